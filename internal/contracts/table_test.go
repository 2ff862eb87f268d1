package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sensordat/internal/sensor"
)

func TestSampleTable_Accessors(t *testing.T) {
	table, err := NewSampleTable(sensor.IMU, 4, []float64{
		1, 2, 3, 10.5,
		4, 5, 6, 11.5,
	}, 0)
	require.NoError(t, err)

	rows, cols := table.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, "(2, 4)", table.ShapeString())
	assert.Equal(t, 8, table.Len())
	assert.Equal(t, 6.0, table.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6, 11.5}, table.Row(1))
	assert.Equal(t, []float64{1, 2, 3}, table.Channels(0))
	assert.Equal(t, []float64{2, 5}, table.Column(1))
	assert.Equal(t, []float64{10.5, 11.5}, table.Timestamps())
	assert.Equal(t, 11.5, table.Timestamp(1))
}

func TestSampleTable_RowIsCopy(t *testing.T) {
	table, err := NewSampleTable(sensor.HR, 2, []float64{72, 100}, 0)
	require.NoError(t, err)

	row := table.Row(0)
	row[0] = -1
	assert.Equal(t, 72.0, table.At(0, 0))
}

func TestNewSampleTable_Invalid(t *testing.T) {
	_, err := NewSampleTable(sensor.HR, 0, nil, 0)
	assert.Error(t, err)

	_, err = NewSampleTable(sensor.HR, 2, []float64{1, 2, 3}, 0)
	assert.Error(t, err)
}

func TestQualityReport_MeanInterval(t *testing.T) {
	q := QualityReport{}
	_, ok := q.MeanInterval()
	assert.False(t, ok)

	v := 1.5
	q.MeanIntervalSeconds = &v
	got, ok := q.MeanInterval()
	assert.True(t, ok)
	assert.Equal(t, 1.5, got)
}

func TestQualityReport_HasIssues(t *testing.T) {
	tests := []struct {
		name   string
		report QualityReport
		want   bool
	}{
		{"clean", QualityReport{MonotonicChecked: true, IsMonotonic: true}, false},
		{"nan", QualityReport{NaNCount: 1, MonotonicChecked: true, IsMonotonic: true}, true},
		{"inf", QualityReport{InfCount: 2, MonotonicChecked: true, IsMonotonic: true}, true},
		{"out of order", QualityReport{MonotonicChecked: true, IsMonotonic: false}, true},
		{"unchecked", QualityReport{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.HasIssues())
		})
	}
}

func TestManifest_Saved(t *testing.T) {
	m := Manifest{
		sensor.EEG: {Filepath: "EEG2/eeg_full_data.dat", Shape: [2]int{10, 7}},
		sensor.HR:  nil,
	}
	assert.Equal(t, 1, m.Saved())
	assert.Equal(t, "(10, 7)", m[sensor.EEG].ShapeString())
}

func TestCountOK(t *testing.T) {
	table, err := NewSampleTable(sensor.HR, 2, []float64{72, 100}, 0)
	require.NoError(t, err)

	results := []SensorResult{
		{Sensor: sensor.HR, Table: table},
		{Sensor: sensor.EEG, Err: assert.AnError},
	}
	assert.Equal(t, 1, CountOK(results))
}
