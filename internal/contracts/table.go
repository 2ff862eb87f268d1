package contracts

import (
	"fmt"

	"github.com/wonny/sensordat/internal/sensor"
)

// SampleTable is a decoded sensor recording: Rows x Columns float64 values,
// row-major, last column is a Unix timestamp in seconds.
// ⭐ SSOT: RecordDecoder → QualityChecker/ReportFormatter 전달 타입
//
// A table is immutable once built; accessors return copies.
type SampleTable struct {
	Sensor  sensor.Sensor
	Rows    int
	Columns int

	// Discarded counts trailing values dropped because they did not fill a row
	Discarded int

	data []float64
}

// NewSampleTable wraps row-major data. len(data) must equal rows*columns.
func NewSampleTable(s sensor.Sensor, columns int, data []float64, discarded int) (*SampleTable, error) {
	if columns < 1 {
		return nil, fmt.Errorf("columns must be >= 1, got %d", columns)
	}
	if len(data)%columns != 0 {
		return nil, fmt.Errorf("%d values do not fill %d-column rows", len(data), columns)
	}
	return &SampleTable{
		Sensor:    s,
		Rows:      len(data) / columns,
		Columns:   columns,
		Discarded: discarded,
		data:      data,
	}, nil
}

// Shape returns (rows, columns)
func (t *SampleTable) Shape() (int, int) {
	return t.Rows, t.Columns
}

// ShapeString formats the shape like "(1024, 7)"
func (t *SampleTable) ShapeString() string {
	return fmt.Sprintf("(%d, %d)", t.Rows, t.Columns)
}

// Len is the total number of cells
func (t *SampleTable) Len() int {
	return len(t.data)
}

// At returns the value at row i, column j
func (t *SampleTable) At(i, j int) float64 {
	return t.data[i*t.Columns+j]
}

// Row returns a copy of row i
func (t *SampleTable) Row(i int) []float64 {
	row := make([]float64, t.Columns)
	copy(row, t.data[i*t.Columns:(i+1)*t.Columns])
	return row
}

// Channels returns row i without its timestamp
func (t *SampleTable) Channels(i int) []float64 {
	return t.Row(i)[:t.Columns-1]
}

// Timestamp returns the trailing column of row i
func (t *SampleTable) Timestamp(i int) float64 {
	return t.At(i, t.Columns-1)
}

// Column returns a copy of column j across all rows
func (t *SampleTable) Column(j int) []float64 {
	col := make([]float64, t.Rows)
	for i := range col {
		col[i] = t.data[i*t.Columns+j]
	}
	return col
}

// Timestamps returns the trailing column
func (t *SampleTable) Timestamps() []float64 {
	return t.Column(t.Columns - 1)
}

// Each calls fn for every cell in row-major order
func (t *SampleTable) Each(fn func(v float64)) {
	for _, v := range t.data {
		fn(v)
	}
}
