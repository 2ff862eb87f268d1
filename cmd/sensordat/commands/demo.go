package commands

import (
	"github.com/spf13/cobra"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Visual overview, sample preview and quality check",
	Long: `Runs the full visual walkthrough over every sensor:
1. Overview (samples, channel ranges, time range)
2. Sample preview (first DEMO_ROWS samples)
3. Data quality check

Example:
  go run ./cmd/sensordat demo`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	a.out.Header("🎯 DAT READER DEMO")

	results := a.reader.ReadAll()
	for _, r := range results {
		if !r.OK() {
			a.out.Failure(r.Sensor.Label(), r.Err)
		}
	}

	a.out.Overview(results)
	a.out.Preview(results, a.cfg.DemoRows)
	a.out.Quality(results)

	a.out.Header("✅ DEMO COMPLETED!")
	return nil
}
