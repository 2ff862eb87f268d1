package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dataRoot string
	env      string
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sensordat",
	Short: "Sensor .dat reader and inspector",
	Long: `sensordat reads the fixed-format binary recordings (EEG, IMU, PPG,
HR, SpO2) written by the ProcessAndSaveData pipeline and reports shapes,
sample previews, statistics and data-quality checks.

Usage:
  go run ./cmd/sensordat [command]

Examples:
  go run ./cmd/sensordat process
  go run ./cmd/sensordat summary --root ./extracted
  go run ./cmd/sensordat info hr spo2
  go run ./cmd/sensordat demo
  go run ./cmd/sensordat compare --manifest saved_files.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataRoot, "root", "", "extracted folder with sensor subfolders (default DATA_ROOT)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
