package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// TickerGroup is a named, fixed list of stock symbols that are analyzed
// together and published as one dashboard.
type TickerGroup struct {
	Name    string
	Symbols []string
}

// SymbolRecord holds everything fetched for a single symbol: its daily price
// history (ascending by date) and, when available, the latest reported total
// revenue. Revenue is nil when the figure could not be obtained.
type SymbolRecord struct {
	Symbol  string
	History []OHLCV
	Revenue *float64
}

// GroupDataset maps symbols to their records while preserving the order in
// which records were added. Symbols that yielded no price history are never
// added, so iteration over Symbols only visits usable records.
type GroupDataset struct {
	Symbols []string
	Records map[string]*SymbolRecord
}

// NewGroupDataset creates an empty dataset.
func NewGroupDataset() *GroupDataset {
	return &GroupDataset{Records: make(map[string]*SymbolRecord)}
}

// Add inserts a record, keeping insertion order. A repeated symbol replaces
// the previous record without changing its position.
func (d *GroupDataset) Add(rec *SymbolRecord) {
	if _, ok := d.Records[rec.Symbol]; !ok {
		d.Symbols = append(d.Symbols, rec.Symbol)
	}
	d.Records[rec.Symbol] = rec
}

// Empty reports whether no symbol produced any data.
func (d *GroupDataset) Empty() bool {
	return len(d.Symbols) == 0
}
