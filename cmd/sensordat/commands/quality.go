package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/sensordat/internal/contracts"
)

var qualityStrict bool

// qualityCmd represents the quality command
var qualityCmd = &cobra.Command{
	Use:   "quality [sensor...]",
	Short: "Data quality check per sensor",
	Long: `Checks every decoded table for:
- NaN values
- infinite values
- non-monotonic timestamps (equal neighbours are allowed)
- average sample interval

Example:
  go run ./cmd/sensordat quality
  go run ./cmd/sensordat quality eeg --strict`,
	RunE: runQuality,
}

func init() {
	rootCmd.AddCommand(qualityCmd)
	qualityCmd.Flags().BoolVar(&qualityStrict, "strict", false, "exit non-zero when any sensor has quality issues")
}

func runQuality(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	sensors, unknown := a.parseSensors(cmd, args)
	results := a.reader.InspectMany(sensors)
	a.out.Quality(results)

	if err := unknownSensorsError(unknown); err != nil {
		return err
	}
	if qualityStrict {
		return strictQualityError(results)
	}
	return nil
}

func strictQualityError(results []contracts.SensorResult) error {
	var failed []string
	for _, r := range results {
		if !r.OK() || r.Report.HasIssues() {
			failed = append(failed, r.Sensor.String())
		}
	}
	if len(failed) > 0 {
		return &qualityError{sensors: failed}
	}
	return nil
}

type qualityError struct {
	sensors []string
}

func (e *qualityError) Error() string {
	return "quality check failed for: " + strings.Join(e.sensors, ", ")
}
