package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rvtest/internal/storage"
	"rvtest/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{viewer: viewer}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := storage.NewJSONStorage(args[0]).Load()
	if err != nil {
		return err
	}

	results, err := report.DomainResults()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Report %s has no results\n", args[0])
		return nil
	}

	return vc.viewer.View(reportTitle(report), results)
}

func reportTitle(r *storage.Report) string {
	id := r.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("Run %s, %s on %s (%s)", id, r.Emulator, r.Corpus, r.Timestamp)
}
