package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/wonny/sensordat/internal/contracts"
	"github.com/wonny/sensordat/pkg/config"
	"github.com/wonny/sensordat/pkg/logger"
)

// ErrSourceFolderMissing is returned when the raw data folder is absent
var ErrSourceFolderMissing = errors.New("source folder does not exist")

// ValidationError is raised by the pipeline for a bad product key or input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Workflow is the external ProcessAndSaveData pipeline
// ⭐ SSOT: 외부 파이프라인 인터페이스 (내부 알고리즘은 범위 밖)
type Workflow interface {
	RunCompleteWorkflow(ctx context.Context) (contracts.Manifest, error)
}

// CommandWorkflow runs the pipeline as an external executable:
//
//	<command> <source_folder> <product_key>
//
// and reads the saved-files manifest from its stdout.
type CommandWorkflow struct {
	command      string
	sourceFolder string
	productKey   string
	logger       *logger.Logger
}

// NewCommandWorkflow validates inputs and creates a CommandWorkflow
func NewCommandWorkflow(cfg config.PipelineConfig, log *logger.Logger) (*CommandWorkflow, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := ValidateProductKey(cfg.ProductKey); err != nil {
		return nil, err
	}
	if cfg.Command == "" {
		return nil, fmt.Errorf("pipeline command is required")
	}

	return &CommandWorkflow{
		command:      cfg.Command,
		sourceFolder: cfg.SourceFolder,
		productKey:   cfg.ProductKey,
		logger:       log,
	}, nil
}

// RunCompleteWorkflow runs the pipeline to completion
func (w *CommandWorkflow) RunCompleteWorkflow(ctx context.Context) (contracts.Manifest, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, w.command, w.sourceFolder, w.productKey)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	w.logger.WithFields(map[string]interface{}{
		"command": w.command,
		"source":  w.sourceFolder,
	}).Debug("starting pipeline")

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && isValidationMessage(msg) {
			return nil, &ValidationError{Message: lastLine(msg)}
		}
		if msg != "" {
			return nil, fmt.Errorf("run pipeline: %w: %s", err, lastLine(msg))
		}
		return nil, fmt.Errorf("run pipeline: %w", err)
	}

	manifest, err := ParseManifest(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	return manifest, nil
}

// CheckSourceFolder fails with ErrSourceFolderMissing when path is absent
func CheckSourceFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceFolderMissing, path)
		}
		return fmt.Errorf("stat source folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceFolderMissing, path)
	}
	return nil
}

// ValidateProductKey rejects an empty key before the pipeline is started
func ValidateProductKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return &ValidationError{Message: "product key is required"}
	}
	return nil
}

// MaskKey shows at most the first 20 characters of a product key
func MaskKey(key string) string {
	if len(key) > 20 {
		key = key[:20]
	}
	return key + "..."
}

func isValidationMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(msg, "ValueError") || strings.Contains(lower, "validation")
}

func lastLine(msg string) string {
	lines := strings.Split(msg, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
