package contracts

import "github.com/wonny/sensordat/internal/sensor"

// SensorReader reads and inspects sensor files
// ⭐ SSOT: 센서 읽기 인터페이스
type SensorReader interface {
	Root() string
	ReadSensor(s sensor.Sensor) (*SampleTable, error)
	InspectMany(sensors []sensor.Sensor) []SensorResult
	ReadAll() []SensorResult
}

// QualityChecker validates a decoded table
type QualityChecker interface {
	Check(table *SampleTable) *QualityReport
}
