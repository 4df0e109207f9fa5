package calculator

import (
	"sort"

	"MarketBoard/internal/model"
)

// SymbolReturn pairs a symbol with its mean day-over-day fractional price change.
type SymbolReturn struct {
	Symbol string
	Mean   float64
}

// AverageDailyReturns computes the mean daily fractional return per symbol
// over its own full series and returns the symbols sorted ascending by that
// mean. The first bar contributes no term; a symbol with fewer than two bars
// has a mean of zero. The sort is stable, so ties keep dataset order.
func AverageDailyReturns(ds *model.GroupDataset) []SymbolReturn {
	returns := make([]SymbolReturn, 0, len(ds.Symbols))
	for _, symbol := range ds.Symbols {
		returns = append(returns, SymbolReturn{
			Symbol: symbol,
			Mean:   meanDailyReturn(ds.Records[symbol].History),
		})
	}
	sort.SliceStable(returns, func(i, j int) bool { return returns[i].Mean < returns[j].Mean })
	return returns
}

func meanDailyReturn(bars []model.OHLCV) float64 {
	sum := 0.0
	terms := 0
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			continue // change from a zero close is undefined
		}
		sum += (bars[i].Close - prev) / prev
		terms++
	}
	if terms == 0 {
		return 0
	}
	return sum / float64(terms)
}
