package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var se *SiteError
	if !stderrors.As(err, &se) {
		return 1
	}
	switch se.Category {
	case CategoryValidation:
		return 2
	case CategoryConfig:
		return 7
	case CategoryFileSystem:
		return 11
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// HandleError logs err and exits the process with the mapped exit code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	a.logError(err)
	os.Exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) logError(err error) {
	var se *SiteError
	if !stderrors.As(err, &se) {
		a.logger.Error("Command failed", "error", err)
		return
	}
	attrs := []any{"category", string(se.Category), "severity", string(se.Severity)}
	if a.verbose {
		for k, v := range se.Context {
			attrs = append(attrs, k, fmt.Sprint(v))
		}
	}
	attrs = append(attrs, "error", err)
	a.logger.Error(se.Message, attrs...)
}
