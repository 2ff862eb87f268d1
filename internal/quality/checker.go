package quality

import (
	"math"

	"github.com/wonny/sensordat/internal/contracts"
)

// Checker validates decoded sensor tables
// ⭐ SSOT: .dat 데이터 품질 검증
type Checker struct{}

var _ contracts.QualityChecker = (*Checker)(nil)

// NewChecker creates a new Checker instance
func NewChecker() *Checker {
	return &Checker{}
}

// Check computes NaN/Inf counts, timestamp monotonicity and the mean
// sample interval. It never fails on NaN or Inf cells.
func (c *Checker) Check(table *contracts.SampleTable) *contracts.QualityReport {
	report := &contracts.QualityReport{}

	// 1. NaN / Inf 카운트
	table.Each(func(v float64) {
		switch {
		case math.IsNaN(v):
			report.NaNCount++
		case math.IsInf(v, 0):
			report.InfCount++
		}
	})

	// 2. 타임스탬프 검증 (timestamp 컬럼이 있는 경우만)
	if table.Columns > 1 {
		timestamps := table.Timestamps()
		report.MonotonicChecked = true
		report.IsMonotonic = isMonotonic(timestamps)
		report.MeanIntervalSeconds = meanInterval(timestamps)
	}

	return report
}

// Check is a convenience wrapper around a zero Checker
func Check(table *contracts.SampleTable) *contracts.QualityReport {
	return NewChecker().Check(table)
}

// isMonotonic reports a non-decreasing sequence. Equal neighbours are
// allowed; a NaN neighbour never counts as a decrease.
func isMonotonic(ts []float64) bool {
	for i := 1; i < len(ts); i++ {
		if ts[i]-ts[i-1] < 0 {
			return false
		}
	}
	return true
}

// meanInterval returns the mean of consecutive differences, nil when
// there are fewer than two samples
func meanInterval(ts []float64) *float64 {
	if len(ts) < 2 {
		return nil
	}

	var sum float64
	for i := 1; i < len(ts); i++ {
		sum += ts[i] - ts[i-1]
	}
	mean := sum / float64(len(ts)-1)
	return &mean
}
