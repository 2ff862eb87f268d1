package commands

import (
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Shape of every sensor file",
	Long: `Reads all five sensor files and prints their shapes.

A missing or malformed sensor is reported as "Not available" and never
stops the others.

Example:
  go run ./cmd/sensordat summary
  go run ./cmd/sensordat summary --root ./extracted_RAW_DATA`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	results := a.reader.ReadAll()
	a.out.Summary(a.reader.Root(), results)
	return nil
}
