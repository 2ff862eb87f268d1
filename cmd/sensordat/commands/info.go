package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/sensordat/internal/contracts"
)

var infoRows int

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [sensor...]",
	Short: "Detailed information per sensor",
	Long: `Prints shape, first/last samples, timestamp range and statistics.

Sensors: eeg, imu, ppg, hr, spo2 (default: all available)

Example:
  go run ./cmd/sensordat info
  go run ./cmd/sensordat info hr spo2 --rows 5`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().IntVar(&infoRows, "rows", 0, "samples shown at head and tail (default PREVIEW_ROWS)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	rows := a.cfg.PreviewRows
	if infoRows > 0 {
		rows = infoRows
	}

	sensors, unknown := a.parseSensors(cmd, args)
	results := a.reader.InspectMany(sensors)

	// 인자 없이 실행하면 사용 가능한 센서만 상세 출력
	if len(args) == 0 {
		a.out.Summary(a.reader.Root(), results)
		available := make([]contracts.SensorResult, 0, len(results))
		for _, r := range results {
			if r.OK() {
				available = append(available, r)
			}
		}
		results = available
	}

	for _, r := range results {
		a.out.Info(r, rows)
	}

	return unknownSensorsError(unknown)
}
