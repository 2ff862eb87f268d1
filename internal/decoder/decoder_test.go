package decoder

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sensordat/internal/sensor"
)

func syntheticRows(k, columns int) [][]float64 {
	rows := make([][]float64, k)
	for i := range rows {
		row := make([]float64, columns)
		for j := 0; j < columns-1; j++ {
			row[j] = float64(i*100+j) + 0.25
		}
		row[columns-1] = 1753868352.0 + float64(i)*0.004
		rows[i] = row
	}
	return rows
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, s := range sensor.All() {
		t.Run(s.String(), func(t *testing.T) {
			schema := s.Schema()
			const k = 17
			rows := syntheticRows(k, schema.TotalColumns())
			buf := Encode(rows)
			require.Len(t, buf, k*schema.TotalColumns()*ElementSize)

			table, err := Decode(buf, schema)
			require.NoError(t, err)

			assert.Equal(t, s, table.Sensor)
			assert.Equal(t, k, table.Rows)
			assert.Equal(t, schema.TotalColumns(), table.Columns)
			assert.Equal(t, 0, table.Discarded)
			for i, want := range rows {
				assert.Equal(t, want, table.Row(i), "row %d", i)
			}
		})
	}
}

func TestDecode_DiscardsTrailingPartialRow(t *testing.T) {
	schema := sensor.IMU.Schema() // 4 columns
	rows := syntheticRows(3, 4)
	buf := Encode(rows)
	buf = append(buf, Encode([][]float64{{9, 9}})...) // 2 stray values

	table, err := Decode(buf, schema)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Rows)
	assert.Equal(t, 2, table.Discarded)
	assert.Equal(t, rows[2], table.Row(2))
}

func TestDecode_MalformedLength(t *testing.T) {
	buf := append(Encode([][]float64{{72, 100}}), 0x01, 0x02, 0x03)

	table, err := Decode(buf, sensor.HR.Schema())
	assert.Nil(t, table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedBuffer))

	var malformed *MalformedBufferError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 19, malformed.Length)
	assert.Equal(t, sensor.HR, malformed.Sensor)
}

func TestDecode_Empty(t *testing.T) {
	table, err := Decode(nil, sensor.EEG.Schema())
	require.NoError(t, err)
	assert.Equal(t, 0, table.Rows)
	assert.Equal(t, 7, table.Columns)
}

func TestDecode_PreservesSpecialValues(t *testing.T) {
	rows := [][]float64{{math.NaN(), 1}, {math.Inf(-1), 2}}
	table, err := Decode(Encode(rows), sensor.SPO2.Schema())
	require.NoError(t, err)

	assert.True(t, math.IsNaN(table.At(0, 0)))
	assert.True(t, math.IsInf(table.At(1, 0), -1))
}

func TestDecode_IndependentOfInput(t *testing.T) {
	buf := Encode([][]float64{{72, 100}})
	table, err := Decode(buf, sensor.HR.Schema())
	require.NoError(t, err)

	for i := range buf {
		buf[i] = 0xFF
	}
	assert.Equal(t, 72.0, table.At(0, 0))
}

func TestReadFile_HeartRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hr_full_data.dat")
	require.NoError(t, os.WriteFile(path, Encode([][]float64{{72.0, 100.0}, {75.0, 101.0}}), 0o644))

	table, err := ReadFile(path, sensor.HR.Schema())
	require.NoError(t, err)

	assert.Equal(t, 2, table.Rows)
	assert.Equal(t, 2, table.Columns)
	assert.Equal(t, []float64{72.0, 100.0}, table.Row(0))
	assert.Equal(t, []float64{75.0, 101.0}, table.Row(1))
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.dat")

	_, err := ReadFile(path, sensor.PPG.Schema())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingFile))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var missing *MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, path, missing.Path)
	assert.Equal(t, sensor.PPG, missing.Sensor)
}

func TestReadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeg_full_data.dat")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5}, 0o644))

	_, err := ReadFile(path, sensor.EEG.Schema())
	assert.ErrorIs(t, err, ErrMalformedBuffer)
	assert.ErrorContains(t, err, path)
}
