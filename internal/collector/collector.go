package collector

import (
	"errors"
	"log"
	"time"

	"MarketBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Histories   map[string][]model.OHLCV
	Revenues    map[string]float64
	HistoryErrs map[string]error
	RevenueErrs map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(symbol, _ string) ([]model.OHLCV, error) {
	if err, ok := m.HistoryErrs[symbol]; ok {
		return nil, err
	}
	return m.Histories[symbol], nil
}

func (m *MockFetcher) FetchLatestRevenue(symbol string) (float64, error) {
	if err, ok := m.RevenueErrs[symbol]; ok {
		return 0, err
	}
	rev, ok := m.Revenues[symbol]
	if !ok {
		return 0, errNoRevenue
	}
	return rev, nil
}

var errNoRevenue = errors.New("no revenue data")

// GenerateBars produces a synthetic ascending price series for tests.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches a group of symbols, isolating per-symbol failures.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// CollectGroup fetches the daily history and latest revenue for every symbol.
// A symbol with no history (error or empty series) is logged and omitted; a
// revenue failure only drops the revenue figure, never the price history. One
// bad symbol never aborts the group, so the result may be empty.
func (c *Collector) CollectGroup(symbols []string, period string) *model.GroupDataset {
	ds := model.NewGroupDataset()
	for _, symbol := range symbols {
		log.Printf("[INFO] fetching data for: %s", symbol)

		history, err := c.Fetcher.FetchDailyHistory(symbol, period)
		if err != nil {
			log.Printf("[ERROR] failed to fetch %s: %v", symbol, err)
			continue
		}
		if len(history) == 0 {
			log.Printf("[WARN] no data for %s", symbol)
			continue
		}

		rec := &model.SymbolRecord{Symbol: symbol, History: history}
		if revenue, err := c.Fetcher.FetchLatestRevenue(symbol); err != nil {
			log.Printf("[WARN] revenue fetch error for %s: %v", symbol, err)
		} else {
			rec.Revenue = &revenue
		}
		ds.Add(rec)
	}
	return ds
}
