package sensor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sensor identifies one of the fixed recording streams
// ⭐ SSOT: 지원 센서 목록은 여기서만 정의
type Sensor int

const (
	EEG Sensor = iota
	IMU
	PPG
	HR
	SPO2
)

// ErrUnknownSensor is matched by every UnknownSensorError
var ErrUnknownSensor = errors.New("unknown sensor")

// UnknownSensorError reports an identifier outside the supported set
type UnknownSensorError struct {
	Name string
}

func (e *UnknownSensorError) Error() string {
	return fmt.Sprintf("unknown sensor: %s", e.Name)
}

// Is makes errors.Is(err, ErrUnknownSensor) work
func (e *UnknownSensorError) Is(target error) bool {
	return target == ErrUnknownSensor
}

// Schema describes the fixed row layout of a sensor file.
// ChannelCount excludes the trailing timestamp column.
type Schema struct {
	Sensor       Sensor
	ChannelCount int
	HasTimestamp bool
}

// TotalColumns is the row width, channels plus timestamp
func (s Schema) TotalColumns() int {
	if s.HasTimestamp {
		return s.ChannelCount + 1
	}
	return s.ChannelCount
}

type entry struct {
	name     string
	folder   string
	channels int
}

var catalog = [...]entry{
	EEG:  {name: "eeg", folder: "EEG2", channels: 6},
	IMU:  {name: "imu", folder: "IMU2", channels: 3},
	PPG:  {name: "ppg", folder: "PPG2", channels: 3},
	HR:   {name: "hr", folder: "HR", channels: 1},
	SPO2: {name: "spo2", folder: "SPO2", channels: 1},
}

// All returns every supported sensor in report order
func All() []Sensor {
	return []Sensor{EEG, IMU, PPG, HR, SPO2}
}

// Parse resolves a sensor identifier (case-insensitive).
// It never touches the filesystem.
func Parse(name string) (Sensor, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, e := range catalog {
		if e.name == key {
			return Sensor(i), nil
		}
	}
	return 0, &UnknownSensorError{Name: name}
}

// Valid reports whether s is one of the enumerated sensors
func (s Sensor) Valid() bool {
	return s >= EEG && s <= SPO2
}

func (s Sensor) String() string {
	if !s.Valid() {
		return fmt.Sprintf("sensor(%d)", int(s))
	}
	return catalog[s].name
}

// Label is the upper-case display name (EEG, SPO2, ...)
func (s Sensor) Label() string {
	return strings.ToUpper(s.String())
}

// Folder is the subfolder holding the sensor's file
func (s Sensor) Folder() string {
	if !s.Valid() {
		return ""
	}
	return catalog[s].folder
}

// FileName is the expected data file name, <sensor>_full_data.dat
func (s Sensor) FileName() string {
	return s.String() + "_full_data.dat"
}

// Schema returns the sensor's column layout
func (s Sensor) Schema() Schema {
	if !s.Valid() {
		return Schema{Sensor: s}
	}
	return Schema{
		Sensor:       s,
		ChannelCount: catalog[s].channels,
		HasTimestamp: true,
	}
}

// IsSingleValue reports sensors with one channel (hr, spo2)
func (s Sensor) IsSingleValue() bool {
	return s.Valid() && catalog[s].channels == 1
}

// Path joins root with the sensor's folder and file name
func (s Sensor) Path(root string) string {
	return filepath.Join(root, s.Folder(), s.FileName())
}
