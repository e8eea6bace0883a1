package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rvtest/internal/config"
	"rvtest/internal/discovery"
	"rvtest/internal/domain"
	"rvtest/internal/execution"
	"rvtest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	filter *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, filter *discovery.Filter) *ListCommand {
	return &ListCommand{
		config: cfg,
		filter: filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	runner, err := execution.NewRunner(lc.config)
	if err != nil {
		return err
	}

	tests, err := discoverTests(lc.config, lc.filter)
	if err != nil {
		return err
	}

	if len(tests) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No tests found")
		return nil
	}

	formatter := ui.NewFormatter(lc.config, cmd.OutOrStdout())
	return formatter.PrintTestList(tests, func(tc domain.TestCase) ([]string, error) {
		args, err := runner.Args(tc)
		if err != nil {
			return nil, err
		}
		return append([]string{runner.Emulator()}, args...), nil
	})
}
