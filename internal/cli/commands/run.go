package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rvtest/internal/config"
	"rvtest/internal/discovery"
	"rvtest/internal/execution"
	"rvtest/internal/storage"
	"rvtest/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	filter *discovery.Filter
	viewer ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, filter *discovery.Filter, viewer ui.Viewer) *RunCommand {
	return &RunCommand{
		config: cfg,
		filter: filter,
		viewer: viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	runner, err := execution.NewRunner(rc.config)
	if err != nil {
		return err
	}
	if err := runner.Check(); err != nil {
		return err
	}

	// Discover tests
	tests, err := discoverTests(rc.config, rc.filter)
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No tests to execute")
	}

	progress, err := ui.NewProgress(rc.config.Progress, out, rc.config.PadWidth)
	if err != nil {
		return err
	}
	executor := execution.NewSequential(runner)
	executor.SetProgress(progress)

	formatter := ui.NewFormatter(rc.config, out)

	// Execute tests
	results, duration, err := executor.Execute(cmd.Context(), tests)
	if err != nil {
		var interrupted *execution.InterruptedError
		if errors.As(err, &interrupted) {
			formatter.PrintInterrupted(interrupted.Test)
		}
		return err
	}
	slog.Debug("run finished", "tests", len(results), "duration", duration)

	formatter.PrintReport(results)

	if rc.config.JSONPath != "" {
		report := storage.NewReport(rc.config, results, duration)
		if err := storage.NewJSONStorage(rc.config.JSONPath).Save(report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		slog.Debug("report saved", "path", rc.config.JSONPath, "run_id", report.RunID)
	}

	if rc.config.Browse && len(results) > 0 {
		return rc.viewer.View(browseTitle(rc.config), results)
	}
	return nil
}

func browseTitle(cfg *config.Config) string {
	return fmt.Sprintf("%s on %s", cfg.GetEmulatorPath(), cfg.GetCorpusPath())
}
