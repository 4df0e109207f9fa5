package collector

import "MarketBoard/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyHistory returns daily bars for the given period (e.g. "5y").
	FetchDailyHistory(symbol, period string) ([]model.OHLCV, error)
	// FetchLatestRevenue returns the most recent reported total revenue.
	FetchLatestRevenue(symbol string) (float64, error)
	Name() string
}
