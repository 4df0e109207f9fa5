package calculator

import (
	"math"
	"testing"
	"time"

	"MarketBoard/internal/model"
)

func barsOn(days []int, closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(days))
	for i, d := range days {
		bars[i] = model.OHLCV{
			Time:  time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC),
			Close: closes[i],
		}
	}
	return bars
}

func TestBuildClosingPriceTable_AlignsOnDateUnion(t *testing.T) {
	ds := model.NewGroupDataset()
	ds.Add(&model.SymbolRecord{Symbol: "AAA", History: barsOn([]int{1, 2, 3}, []float64{10, 11, 12})})
	ds.Add(&model.SymbolRecord{Symbol: "BBB", History: barsOn([]int{2, 3, 4}, []float64{20, 21, 22})})

	table := BuildClosingPriceTable(ds)

	if len(table.Dates) != 4 {
		t.Fatalf("expected 4 dates in union, got %d", len(table.Dates))
	}
	if table.Dates[0] != "2024-03-01" || table.Dates[3] != "2024-03-04" {
		t.Errorf("dates not sorted: %v", table.Dates)
	}
	if len(table.Symbols) != 2 || table.Symbols[0] != "AAA" || table.Symbols[1] != "BBB" {
		t.Errorf("column order must follow dataset order, got %v", table.Symbols)
	}
}

func TestBuildClosingPriceTable_MissingDatesAreGaps(t *testing.T) {
	ds := model.NewGroupDataset()
	ds.Add(&model.SymbolRecord{Symbol: "AAA", History: barsOn([]int{1, 3}, []float64{10, 12})})
	ds.Add(&model.SymbolRecord{Symbol: "BBB", History: barsOn([]int{1, 2, 3}, []float64{20, 21, 22})})

	table := BuildClosingPriceTable(ds)

	col := table.Columns["AAA"]
	if !math.IsNaN(col[1]) {
		t.Errorf("expected gap for AAA on 2024-03-02, got %v", col[1])
	}
	if col[0] != 10 || col[2] != 12 {
		t.Errorf("unexpected AAA column: %v", col)
	}
	if got := table.ColumnValues("AAA"); len(got) != 2 {
		t.Errorf("expected 2 non-gap values for AAA, got %v", got)
	}
}
