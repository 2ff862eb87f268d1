package contracts

import (
	"fmt"

	"github.com/wonny/sensordat/internal/sensor"
)

// SavedFile describes one .dat file written by the processing pipeline
type SavedFile struct {
	Filepath  string  `yaml:"filepath" json:"filepath"`
	Shape     [2]int  `yaml:"shape" json:"shape"`
	StartTime float64 `yaml:"start_time" json:"start_time"`
}

// ShapeString formats the shape like "(1024, 7)"
func (f *SavedFile) ShapeString() string {
	return fmt.Sprintf("(%d, %d)", f.Shape[0], f.Shape[1])
}

// Manifest maps each sensor to its saved file; nil means the pipeline failed
// to save that sensor.
// ⭐ SSOT: run_complete_workflow 결과 타입
type Manifest map[sensor.Sensor]*SavedFile

// Saved returns how many sensors have a saved file
func (m Manifest) Saved() int {
	n := 0
	for _, f := range m {
		if f != nil {
			n++
		}
	}
	return n
}
