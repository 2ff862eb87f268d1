package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/sensordat/internal/pipeline"
)

var manifestPath string

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare .dat shapes with the pipeline result",
	Long: `Loads the saved-files manifest produced by run_complete_workflow
(YAML or JSON: sensor → {filepath, shape, start_time}) and checks that
each decoded .dat file has the shape the pipeline reported.

Example:
  go run ./cmd/sensordat compare --manifest saved_files.yaml`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&manifestPath, "manifest", "", "saved-files manifest from the pipeline")
	_ = compareCmd.MarkFlagRequired("manifest")
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	manifest, err := pipeline.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	results := a.reader.ReadAll()
	a.out.Comparison(results, manifest)
	return nil
}
