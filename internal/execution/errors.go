package execution

import (
	"errors"
	"fmt"

	"rvtest/internal/domain"
)

var (
	// ErrLaunch is matched by LaunchError
	ErrLaunch = errors.New("emulator could not be launched")
	// ErrInterrupted is matched by InterruptedError
	ErrInterrupted = errors.New("run interrupted")
)

// LaunchError reports an emulator that could not be started. It is never
// recorded as a failed test.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch emulator %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

func (e *LaunchError) Is(target error) bool { return target == ErrLaunch }

// InterruptedError reports the test that was running when the run was cancelled
type InterruptedError struct {
	Test domain.TestCase
}

func (e *InterruptedError) Error() string {
	return "interrupted while running " + e.Test.Label()
}

func (e *InterruptedError) Is(target error) bool { return target == ErrInterrupted }
