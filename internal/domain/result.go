package domain

import (
	"fmt"
	"time"
)

// Outcome is the state of a test case in a run
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomePassed
	OutcomeFailed
)

// String returns the lower-case name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// ParseOutcome is the inverse of Outcome.String
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "pending":
		return OutcomePending, nil
	case "passed":
		return OutcomePassed, nil
	case "failed":
		return OutcomeFailed, nil
	default:
		return 0, fmt.Errorf("unknown outcome %q", s)
	}
}

// Result is the record of one executed test case. Results are produced once
// per test and never modified afterwards.
type Result struct {
	Test     TestCase
	Outcome  Outcome
	ExitCode int           // Exit status of the emulator, -1 if it was killed by a signal
	Args     []string      // Arguments passed to the emulator
	Duration time.Duration // Time taken to execute
}

// Passed reports whether the emulator exit code matched the pass convention
func (r Result) Passed() bool {
	return r.Outcome == OutcomePassed
}

// Summary holds the aggregate counts of a run
type Summary struct {
	Passed int
	Failed int
	Total  int
}

// Summarize folds results into pass/fail counts. Pending entries count toward
// neither side, so Passed+Failed equals the number of executed tests.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Outcome {
		case OutcomePassed:
			s.Passed++
		case OutcomeFailed:
			s.Failed++
		default:
			continue
		}
		s.Total++
	}
	return s
}
