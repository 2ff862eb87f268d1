package contracts

// QualityReport holds validity statistics for one decoded table.
// Derived and recomputed per call; nothing is cached.
type QualityReport struct {
	NaNCount int `json:"nan_count"`
	InfCount int `json:"inf_count"`

	// MonotonicChecked is false when the table has no timestamp column to check
	MonotonicChecked bool `json:"monotonic_checked"`
	IsMonotonic      bool `json:"is_monotonic"`

	// MeanIntervalSeconds is nil for tables with fewer than 2 rows
	MeanIntervalSeconds *float64 `json:"mean_interval_seconds,omitempty"`
}

// MeanInterval returns the average sample interval and whether it exists
func (q *QualityReport) MeanInterval() (float64, bool) {
	if q.MeanIntervalSeconds == nil {
		return 0, false
	}
	return *q.MeanIntervalSeconds, true
}

// HasIssues reports NaN/Inf cells or out-of-order timestamps
func (q *QualityReport) HasIssues() bool {
	if q.NaNCount > 0 || q.InfCount > 0 {
		return true
	}
	return q.MonotonicChecked && !q.IsMonotonic
}
