package contracts

import "github.com/wonny/sensordat/internal/sensor"

// SensorResult is the outcome of reading one sensor.
// Exactly one of Table or Err is set; Report is set only when checked.
type SensorResult struct {
	Sensor sensor.Sensor
	Table  *SampleTable
	Report *QualityReport
	Err    error
}

// OK reports whether the sensor was decoded
func (r SensorResult) OK() bool {
	return r.Err == nil && r.Table != nil
}

// CountOK returns how many results decoded successfully
func CountOK(results []SensorResult) int {
	n := 0
	for _, r := range results {
		if r.OK() {
			n++
		}
	}
	return n
}
