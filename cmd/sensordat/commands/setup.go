package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/sensordat/internal/contracts"
	"github.com/wonny/sensordat/internal/reader"
	"github.com/wonny/sensordat/internal/report"
	"github.com/wonny/sensordat/internal/sensor"
	"github.com/wonny/sensordat/pkg/config"
	"github.com/wonny/sensordat/pkg/logger"
)

// app bundles what every command needs
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	out    *report.Formatter
	reader contracts.SensorReader
}

// setup loads config, applies global flags and builds the reader
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if dataRoot != "" {
		cfg.DataRoot = dataRoot
	}
	if env != "" {
		cfg.Env = env
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	return &app{
		cfg:    cfg,
		log:    log,
		out:    report.New(cmd.OutOrStdout()),
		reader: reader.New(cfg.DataRoot, log),
	}, nil
}

// parseSensors resolves sensor arguments; no arguments means all sensors.
// Unknown names are reported and skipped so the rest still run.
func (a *app) parseSensors(cmd *cobra.Command, args []string) ([]sensor.Sensor, []string) {
	if len(args) == 0 {
		return sensor.All(), nil
	}

	var sensors []sensor.Sensor
	var unknown []string
	for _, name := range args {
		s, err := sensor.Parse(name)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ %s: %v\n", strings.ToUpper(name), err)
			unknown = append(unknown, name)
			continue
		}
		sensors = append(sensors, s)
	}
	return sensors, unknown
}

func unknownSensorsError(unknown []string) error {
	if len(unknown) == 0 {
		return nil
	}
	return fmt.Errorf("unknown sensor(s): %s", strings.Join(unknown, ", "))
}
