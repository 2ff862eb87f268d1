package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wonny/sensordat/internal/pipeline"
	"github.com/wonny/sensordat/pkg/config"
	"github.com/wonny/sensordat/pkg/logger"
)

var (
	// Process flags
	sourceFolder string
	productKey   string
)

// newWorkflow builds the external pipeline; replaced in tests
var newWorkflow = func(cfg config.PipelineConfig, log *logger.Logger) (pipeline.Workflow, error) {
	return pipeline.NewCommandWorkflow(cfg, log)
}

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the ProcessAndSaveData workflow",
	Long: `Runs the external processing pipeline over the raw source folder and
prints which sensor files were saved.

Exit code 1 on:
- missing source folder
- validation error (e.g. invalid product key)
- user interruption (Ctrl+C)
- unexpected pipeline failure

Example:
  go run ./cmd/sensordat process
  go run ./cmd/sensordat process --source ./RAW_DATA --product-key xxxxx`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVar(&sourceFolder, "source", "", "raw data folder (default SOURCE_FOLDER)")
	processCmd.Flags().StringVar(&productKey, "product-key", "", "product key (default PRODUCT_KEY)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	pcfg := a.cfg.Pipeline
	if sourceFolder != "" {
		pcfg.SourceFolder = sourceFolder
	}
	if productKey != "" {
		pcfg.ProductKey = productKey
	}

	runID := uuid.New().String()
	log := a.log.WithField("run_id", runID)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "🚀 Starting data processing workflow...")
	fmt.Fprintf(out, "📁 Source folder: %s\n", pcfg.SourceFolder)
	fmt.Fprintf(out, "🔐 Product key: %s\n", pipeline.MaskKey(pcfg.ProductKey))

	if err := pipeline.CheckSourceFolder(pcfg.SourceFolder); err != nil {
		return err
	}

	workflow, err := newWorkflow(pcfg, log)
	if err != nil {
		return describeProcessError(err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if pcfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pcfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	manifest, err := workflow.RunCompleteWorkflow(ctx)
	if err != nil {
		log.WithError(err).Error("workflow failed")
		return describeProcessError(err)
	}

	saved := a.out.SavedFiles(manifest)
	log.WithFields(map[string]interface{}{
		"saved":    saved,
		"duration": time.Since(start).String(),
	}).Info("workflow completed")

	return nil
}

// describeProcessError maps pipeline failures to user-facing messages
func describeProcessError(err error) error {
	var verr *pipeline.ValidationError
	switch {
	case errors.As(err, &verr):
		return fmt.Errorf("validation error: %s", verr.Message)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("process interrupted by user")
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("pipeline timed out: %w", err)
	default:
		return fmt.Errorf("unexpected error: %w", err)
	}
}
