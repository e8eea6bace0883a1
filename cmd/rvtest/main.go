package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rvtest/internal/cli"
	"rvtest/internal/cli/commands"
	"rvtest/internal/config"
	"rvtest/internal/execution"
)

var version = "dev"

// exitInterrupted is the conventional status for a run stopped by SIGINT
const exitInterrupted = 130

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "rvtest",
		Short: "Emulator conformance test harness",
		Long: `Runs an emulator against every binary test image in a corpus directory and
reports pass/fail per image. Each image is judged by the emulator's exit code.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	// Interrupting kills the running emulator and stops the run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if errors.Is(err, execution.ErrInterrupted) {
			os.Exit(exitInterrupted)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
