package quality

import (
	"math"

	"github.com/wonny/sensordat/internal/contracts"
)

// Stats summarizes one column.
// A NaN anywhere in the input makes every field NaN; Inf follows IEEE-754
// arithmetic. Empty input yields NaN for every field.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Std  float64 // population standard deviation
}

// ColumnStats computes min/max/mean/std over values
func ColumnStats(values []float64) Stats {
	nan := math.NaN()
	if len(values) == 0 {
		return Stats{Min: nan, Max: nan, Mean: nan, Std: nan}
	}

	lo, hi := values[0], values[0]
	var sum float64
	for _, v := range values {
		if math.IsNaN(v) {
			return Stats{Min: nan, Max: nan, Mean: nan, Std: nan}
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += v
	}
	mean := sum / float64(len(values))

	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return Stats{
		Min:  lo,
		Max:  hi,
		Mean: mean,
		Std:  math.Sqrt(sumSq / float64(len(values))),
	}
}

// ChannelStats returns Stats for every column except the timestamp
func ChannelStats(table *contracts.SampleTable) []Stats {
	n := table.Columns - 1
	if n < 1 {
		return nil
	}

	stats := make([]Stats, n)
	for j := range stats {
		stats[j] = ColumnStats(table.Column(j))
	}
	return stats
}
