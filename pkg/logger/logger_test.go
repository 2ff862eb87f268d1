package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sensordat/pkg/config"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output: %s", buf.String())
	return entry
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"info level", "info", zerolog.InfoLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Env: "development", LogLevel: tt.level, LogFormat: "json"}
			l := New(cfg)
			require.NotNil(t, l)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: "staging", LogLevel: "debug", LogFormat: "json"}

	l := NewWithWriter(cfg, &buf)
	l.Warnf("dropped %d trailing values", 3)

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "dropped 3 trailing values", entry["message"])
	assert.Equal(t, "staging", entry["env"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: "development", LogLevel: "info", LogFormat: "console"}

	l := NewWithWriter(cfg, &buf)
	l.Info("reading sensors")

	assert.Contains(t, buf.String(), "reading sensors")
}

func TestWithSensor(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	l := &Logger{zlog: zerolog.New(&buf)}

	l.WithSensor("eeg").Info("decoded")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "eeg", entry["sensor"])
	assert.Equal(t, "decoded", entry["message"])
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	l := &Logger{zlog: zerolog.New(&buf)}

	l.WithFields(map[string]interface{}{
		"sensor": "hr",
		"rows":   2,
	}).Info("table ready")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "hr", entry["sensor"])
	assert.Equal(t, float64(2), entry["rows"])
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	l := &Logger{zlog: zerolog.New(&buf)}

	l.WithError(errors.New("data file not found")).WithField("path", "HR/hr_full_data.dat").Error("read failed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "data file not found", entry["error"])
	assert.Equal(t, "HR/hr_full_data.dat", entry["path"])
	assert.Equal(t, "read failed", entry["message"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().WithSensor("imu").Errorf("ignored %d", 1)
	})
}
