package execution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

// Runner executes the emulator against a single test image
type Runner struct {
	emulator string
	shape    ArgShape
	isPass   func(exitCode int) bool
}

// NewRunner creates a Runner from the emulator settings in cfg
func NewRunner(cfg *config.Config) (*Runner, error) {
	shape, err := ParseArgShape(cfg.ArgShape)
	if err != nil {
		return nil, err
	}
	convention, err := ParseConvention(cfg.Convention)
	if err != nil {
		return nil, err
	}
	return &Runner{
		emulator: cfg.GetEmulatorPath(),
		shape:    shape,
		isPass:   convention.IsPass,
	}, nil
}

// Emulator returns the path the runner executes
func (r *Runner) Emulator() string {
	return r.emulator
}

// Args returns the arguments the emulator receives for tc
func (r *Runner) Args(tc domain.TestCase) ([]string, error) {
	return r.shape.Args(tc.Path, tc.Mode)
}

// Check verifies that the emulator exists and is executable, so that a
// broken build is reported before any test runs.
func (r *Runner) Check() error {
	if _, err := exec.LookPath(r.emulator); err != nil {
		return &LaunchError{Path: r.emulator, Err: err}
	}
	return nil
}

// Run executes the emulator for one test case and waits for it to exit.
// Output is discarded; only the exit code is observed. Cancelling ctx kills
// the emulator and returns an InterruptedError.
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) (domain.Result, error) {
	args, err := r.Args(tc)
	if err != nil {
		return domain.Result{}, err
	}
	if ctx.Err() != nil {
		return domain.Result{}, &InterruptedError{Test: tc}
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return domain.Result{}, fmt.Errorf("open %s: %w", os.DevNull, err)
	}
	defer devnull.Close()

	cmd := exec.CommandContext(ctx, r.emulator, args...)
	cmd.Stdin = devnull
	cmd.Stdout = devnull
	cmd.Stderr = devnull
	// The emulator gets its own process group so a terminal Ctrl-C reaches
	// only the harness; cancellation then kills the whole group.
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return domain.Result{}, &LaunchError{Path: r.emulator, Err: err}
	}
	err = cmd.Wait()
	duration := time.Since(start)

	if ctx.Err() != nil {
		return domain.Result{}, &InterruptedError{Test: tc}
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return domain.Result{}, fmt.Errorf("wait for emulator: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}

	outcome := domain.OutcomeFailed
	if r.isPass(exitCode) {
		outcome = domain.OutcomePassed
	}
	slog.Debug("emulator exited", "image", tc.Path, "mode", tc.Mode, "args", args, "exit_code", exitCode, "outcome", outcome)

	return domain.Result{
		Test:     tc,
		Outcome:  outcome,
		ExitCode: exitCode,
		Args:     append([]string{r.emulator}, args...),
		Duration: duration,
	}, nil
}
