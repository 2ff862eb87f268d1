package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string // development, staging, production

	// Reader
	DataRoot    string // extracted folder with EEG2/, IMU2/, ... subfolders
	PreviewRows int    // first/last N samples in `info`
	DemoRows    int    // first N samples in `demo`

	// External pipeline (ProcessAndSaveData)
	Pipeline PipelineConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// PipelineConfig holds settings for invoking the external processing pipeline
type PipelineConfig struct {
	SourceFolder string
	ProductKey   string
	Command      string        // executable that runs the complete workflow
	Timeout      time.Duration // 0 = no timeout
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		DataRoot:    getEnv("DATA_ROOT", "./extracted_RAW_DATA_F24AUN05FX1U_1753868352000"),
		PreviewRows: getEnvAsInt("PREVIEW_ROWS", 3),
		DemoRows:    getEnvAsInt("DEMO_ROWS", 5),

		Pipeline: PipelineConfig{
			SourceFolder: getEnv("SOURCE_FOLDER", "./RAW_DATA_F24AUN05FX1U_1753868352000"),
			ProductKey:   getEnv("PRODUCT_KEY", ""),
			Command:      getEnv("PIPELINE_COMMAND", "process_and_save_data"),
			Timeout:      getEnvAsDuration("PIPELINE_TIMEOUT", "0s"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.DataRoot == "" {
		return fmt.Errorf("DATA_ROOT is required")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.PreviewRows < 1 {
		return fmt.Errorf("PREVIEW_ROWS must be >= 1, got %d", c.PreviewRows)
	}
	if c.DemoRows < 1 {
		return fmt.Errorf("DEMO_ROWS must be >= 1, got %d", c.DemoRows)
	}

	if c.Pipeline.Timeout < 0 {
		return fmt.Errorf("PIPELINE_TIMEOUT must not be negative")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
