package calculator

import (
	"errors"
	"sort"
)

// BoxStats is the five-number summary driving one box of a distribution chart.
type BoxStats struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// CalculateBoxStats computes the five-number summary of the given values.
// Quartiles use linear interpolation between closest ranks, matching the
// convention of most plotting toolkits.
func CalculateBoxStats(values []float64) (BoxStats, error) {
	if len(values) == 0 {
		return BoxStats{}, errors.New("no values provided")
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return BoxStats{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, nil
}

// quantile interpolates linearly over a sorted slice.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := int(h)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
