package sensor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	tests := []struct {
		sensor   Sensor
		name     string
		folder   string
		channels int
		total    int
		single   bool
	}{
		{EEG, "eeg", "EEG2", 6, 7, false},
		{IMU, "imu", "IMU2", 3, 4, false},
		{PPG, "ppg", "PPG2", 3, 4, false},
		{HR, "hr", "HR", 1, 2, true},
		{SPO2, "spo2", "SPO2", 1, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := tt.sensor.Schema()
			assert.Equal(t, tt.name, tt.sensor.String())
			assert.Equal(t, tt.folder, tt.sensor.Folder())
			assert.Equal(t, tt.name+"_full_data.dat", tt.sensor.FileName())
			assert.Equal(t, tt.channels, schema.ChannelCount)
			assert.Equal(t, tt.total, schema.TotalColumns())
			assert.True(t, schema.HasTimestamp)
			assert.Equal(t, tt.single, tt.sensor.IsSingleValue())
		})
	}
}

func TestAll(t *testing.T) {
	assert.Equal(t, []Sensor{EEG, IMU, PPG, HR, SPO2}, All())
}

func TestParse(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := Parse(" SpO2 ")
	require.NoError(t, err)
	assert.Equal(t, SPO2, got)
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("ecg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSensor))

	var unknown *UnknownSensorError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ecg", unknown.Name)
	assert.Equal(t, "unknown sensor: ecg", err.Error())
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "HR", "hr_full_data.dat"), HR.Path("root"))
	assert.Equal(t, filepath.Join("root", "EEG2", "eeg_full_data.dat"), EEG.Path("root"))
}

func TestInvalidSensor(t *testing.T) {
	s := Sensor(42)
	assert.False(t, s.Valid())
	assert.Equal(t, "sensor(42)", s.String())
	assert.Equal(t, 0, s.Schema().TotalColumns())
	assert.Empty(t, s.Folder())
}
