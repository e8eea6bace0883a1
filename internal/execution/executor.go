package execution

import (
	"context"
	"time"

	"rvtest/internal/domain"
)

// Executor executes tests and returns results
type Executor interface {
	Execute(ctx context.Context, tests []domain.TestCase) ([]domain.Result, time.Duration, error)
}

// TestRunner runs a single test case
type TestRunner interface {
	Run(ctx context.Context, tc domain.TestCase) (domain.Result, error)
}

// Progress receives notifications while tests execute
type Progress interface {
	Start(total int)
	Begin(tc domain.TestCase)
	End(result domain.Result)
	Finish()
	// Abort is called instead of Finish when the run stops early
	Abort()
}

// Sequential runs tests one at a time in list order
type Sequential struct {
	runner   TestRunner
	progress Progress
}

// NewSequential creates a Sequential executor around runner
func NewSequential(runner TestRunner) *Sequential {
	return &Sequential{runner: runner}
}

// SetProgress sets the progress reporter for the executor
func (s *Sequential) SetProgress(progress Progress) {
	s.progress = progress
}

// Execute runs every test exactly once. Failed tests are recorded and the run
// continues; a launch failure or an interruption stops the run and no results
// are returned.
func (s *Sequential) Execute(ctx context.Context, tests []domain.TestCase) ([]domain.Result, time.Duration, error) {
	if len(tests) == 0 {
		return nil, 0, nil
	}

	progress := s.progress
	if progress == nil {
		progress = nopProgress{}
	}

	startTime := time.Now()
	progress.Start(len(tests))

	results := make([]domain.Result, 0, len(tests))
	for _, tc := range tests {
		progress.Begin(tc)
		result, err := s.runner.Run(ctx, tc)
		if err != nil {
			progress.Abort()
			return nil, time.Since(startTime), err
		}
		progress.End(result)
		results = append(results, result)
	}

	progress.Finish()
	return results, time.Since(startTime), nil
}

type nopProgress struct{}

func (nopProgress) Start(int)             {}
func (nopProgress) Begin(domain.TestCase) {}
func (nopProgress) End(domain.Result)     {}
func (nopProgress) Finish()               {}
func (nopProgress) Abort()                {}
