package decoder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/wonny/sensordat/internal/contracts"
	"github.com/wonny/sensordat/internal/sensor"
)

// ElementSize is the width of one stored value (float64)
const ElementSize = 8

var (
	// ErrMissingFile is matched by every MissingFileError
	ErrMissingFile = errors.New("data file not found")
	// ErrMalformedBuffer is matched by every MalformedBufferError
	ErrMalformedBuffer = errors.New("malformed buffer")
)

// MissingFileError reports an absent .dat file
type MissingFileError struct {
	Sensor sensor.Sensor
	Path   string
	Err    error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("data file not found: %s", e.Path)
}

func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// MalformedBufferError reports a byte length that is not a whole number of float64s
type MalformedBufferError struct {
	Sensor sensor.Sensor
	Length int
}

func (e *MalformedBufferError) Error() string {
	return fmt.Sprintf("malformed %s buffer: %d bytes is not a multiple of %d",
		e.Sensor, e.Length, ElementSize)
}

func (e *MalformedBufferError) Is(target error) bool {
	return target == ErrMalformedBuffer
}

// Decode interprets buf as native-endian float64 values in file order and
// groups them into schema.TotalColumns()-wide rows.
// ⭐ SSOT: .dat 바이너리 → SampleTable 변환은 여기서만
//
// A trailing partial row is discarded, not an error; the dropped value
// count is reported in SampleTable.Discarded.
func Decode(buf []byte, schema sensor.Schema) (*contracts.SampleTable, error) {
	if len(buf)%ElementSize != 0 {
		return nil, &MalformedBufferError{Sensor: schema.Sensor, Length: len(buf)}
	}

	columns := schema.TotalColumns()
	if columns < 1 {
		return nil, fmt.Errorf("invalid schema for %s: %d columns", schema.Sensor, columns)
	}

	elements := len(buf) / ElementSize
	rows := elements / columns
	kept := rows * columns

	// 입력 버퍼와 저장 공간을 공유하지 않도록 새 슬라이스에 복사
	data := make([]float64, kept)
	for i := range data {
		bits := binary.NativeEndian.Uint64(buf[i*ElementSize:])
		data[i] = math.Float64frombits(bits)
	}

	return contracts.NewSampleTable(schema.Sensor, columns, data, elements-kept)
}

// ReadFile reads the whole file at path and decodes it.
// The file handle is released on every return path.
func ReadFile(path string, schema sensor.Schema) (*contracts.SampleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Sensor: schema.Sensor, Path: path, Err: err}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	table, err := Decode(buf, schema)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return table, nil
}

// Encode is the inverse of Decode: rows are flattened in order and written
// as native-endian float64 values.
func Encode(rows [][]float64) []byte {
	n := 0
	for _, row := range rows {
		n += len(row)
	}

	buf := make([]byte, 0, n*ElementSize)
	for _, row := range rows {
		for _, v := range row {
			buf = binary.NativeEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	return buf
}
