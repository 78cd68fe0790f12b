package relbench

import (
	"fmt"
	"math"
)

// Empirical frequency-table reliability: the discrete-sample counterpart of
// the parametric engine. Given failure counts per equal-width time interval,
// it reduces the table to the classical estimates
//
//	P(t_i) = N(t_i)/N₀         survival
//	f(t_i) = n_i/(N₀·Δt)       failure density
//	λ(t_i) = n_i/(N(t_i)·Δt)   hazard rate
//
// where N(t_i) is the population still operating at the start of interval i.
// This is deliberately separate from the Distribution interface: interval
// estimates are step data, not evaluable functions over continuous time.

// IntervalEstimate holds the reliability estimates for one time interval,
// referenced at the interval midpoint.
type IntervalEstimate struct {
	Midpoint   float64
	Failures   int     // Failures observed in this interval
	Operating  int     // Units still operating at interval start
	Survival   float64 // P(t) estimate
	Density    float64 // f(t) estimate
	HazardRate float64 // λ(t) estimate; NaN once the population is exhausted
}

// FrequencyTable reduces interval failure counts to reliability estimates.
// Immutable once built.
type FrequencyTable struct {
	Width     float64 // Interval width Δt
	Total     int     // Initial population N₀ (sum of all failures)
	Intervals []IntervalEstimate
}

// NewFrequencyTable builds the table from per-interval failure counts. Every
// unit must eventually fail within the observation window, so N₀ is the sum
// of the counts.
func NewFrequencyTable(counts []int, intervalWidth float64) (*FrequencyTable, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("relbench: frequency table needs at least one interval")
	}
	if intervalWidth <= 0 {
		return nil, fmt.Errorf("relbench: interval width must be positive, got %g", intervalWidth)
	}

	total := 0
	for i, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("relbench: negative failure count %d in interval %d", n, i)
		}
		total += n
	}
	if total == 0 {
		return nil, fmt.Errorf("relbench: frequency table has no failures")
	}

	table := &FrequencyTable{
		Width:     intervalWidth,
		Total:     total,
		Intervals: make([]IntervalEstimate, len(counts)),
	}

	operating := total
	for i, n := range counts {
		hazard := math.NaN()
		if operating > 0 {
			hazard = float64(n) / (float64(operating) * intervalWidth)
		}

		table.Intervals[i] = IntervalEstimate{
			Midpoint:   float64(i)*intervalWidth + intervalWidth/2,
			Failures:   n,
			Operating:  operating,
			Survival:   float64(operating) / float64(total),
			Density:    float64(n) / (float64(total) * intervalWidth),
			HazardRate: hazard,
		}

		operating -= n
	}

	return table, nil
}

// MeanTime returns the average time to failure, each failure placed at its
// interval midpoint.
func (ft *FrequencyTable) MeanTime() float64 {
	sum := 0.0
	for _, iv := range ft.Intervals {
		sum += float64(iv.Failures) * iv.Midpoint
	}
	return sum / float64(ft.Total)
}

// Variance returns the sample variance of the failure times (n−1 divisor).
func (ft *FrequencyTable) Variance() float64 {
	if ft.Total < 2 {
		return 0
	}
	mean := ft.MeanTime()
	sum := 0.0
	for _, iv := range ft.Intervals {
		diff := iv.Midpoint - mean
		sum += float64(iv.Failures) * diff * diff
	}
	return sum / float64(ft.Total-1)
}

// Sigma returns the sample standard deviation.
func (ft *FrequencyTable) Sigma() float64 {
	return math.Sqrt(ft.Variance())
}
