package domain

import (
	"fmt"
	"strings"
)

// Mode is the execution variant a test image is run under
type Mode int

const (
	// ModeBaseline runs the image with the emulator's default engine
	ModeBaseline Mode = iota
	// ModeAccelerated additionally asks the emulator for its execution accelerator
	ModeAccelerated
)

// String returns the lower-case name of the mode
func (m Mode) String() string {
	switch m {
	case ModeBaseline:
		return "baseline"
	case ModeAccelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// Annotation returns the suffix shown next to a report row, empty for baseline
func (m Mode) Annotation() string {
	if m == ModeBaseline {
		return ""
	}
	return "(" + m.String() + ")"
}

// TestCase is one schedulable unit of work: a test image under a mode
type TestCase struct {
	Path        string // Location of the binary image
	DisplayName string // Name relative to the corpus, padded for the report column
	Mode        Mode
}

// Label is the unpadded display name followed by the mode annotation, if any
func (tc TestCase) Label() string {
	name := strings.TrimRight(tc.DisplayName, " ")
	if name == "" {
		name = tc.Path
	}
	if a := tc.Mode.Annotation(); a != "" {
		return name + " " + a
	}
	return name
}

// ParseMode is the inverse of Mode.String
func ParseMode(s string) (Mode, error) {
	switch s {
	case "baseline":
		return ModeBaseline, nil
	case "accelerated":
		return ModeAccelerated, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
