package calculator

import (
	"math"
	"sort"

	"MarketBoard/internal/model"
)

// DateLayout is the calendar-day key used to align series across symbols.
const DateLayout = "2006-01-02"

// ClosingPriceTable is a date-aligned table of daily closing prices with one
// column per symbol. Column order follows the dataset's symbol order; a date
// where a symbol has no bar is marked with NaN (a gap, never filled).
type ClosingPriceTable struct {
	Dates   []string
	Symbols []string
	Columns map[string][]float64
}

// BuildClosingPriceTable aligns each symbol's closing prices on the sorted
// union of all dates. When a symbol has several bars on one calendar day the
// last one wins.
func BuildClosingPriceTable(ds *model.GroupDataset) *ClosingPriceTable {
	seen := make(map[string]bool)
	for _, symbol := range ds.Symbols {
		for _, bar := range ds.Records[symbol].History {
			seen[bar.Time.Format(DateLayout)] = true
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	index := make(map[string]int, len(dates))
	for i, d := range dates {
		index[d] = i
	}

	columns := make(map[string][]float64, len(ds.Symbols))
	for _, symbol := range ds.Symbols {
		col := make([]float64, len(dates))
		for i := range col {
			col[i] = math.NaN()
		}
		for _, bar := range ds.Records[symbol].History {
			col[index[bar.Time.Format(DateLayout)]] = bar.Close
		}
		columns[symbol] = col
	}

	return &ClosingPriceTable{
		Dates:   dates,
		Symbols: append([]string(nil), ds.Symbols...),
		Columns: columns,
	}
}

// ColumnValues returns the non-gap closing prices of one column, in date order.
func (t *ClosingPriceTable) ColumnValues(symbol string) []float64 {
	values := make([]float64, 0, len(t.Dates))
	for _, v := range t.Columns[symbol] {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	return values
}
