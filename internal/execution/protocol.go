package execution

import (
	"fmt"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

// ArgShape is the command line layout the emulator expects
type ArgShape int

const (
	ShapeBare    ArgShape = iota // <exe> <image>
	ShapeTesting                 // <exe> --testing <image>
	ShapeFlagged                 // <exe> --test [--jit] --image <image>
)

// ParseArgShape maps a config value to an ArgShape
func ParseArgShape(s string) (ArgShape, error) {
	switch s {
	case config.ShapeBare:
		return ShapeBare, nil
	case config.ShapeTesting:
		return ShapeTesting, nil
	case config.ShapeFlagged:
		return ShapeFlagged, nil
	default:
		return 0, fmt.Errorf("unknown argument shape %q", s)
	}
}

// Args builds the emulator arguments for one image. Only the flagged shape
// can ask for the accelerator.
func (s ArgShape) Args(image string, mode domain.Mode) ([]string, error) {
	if s != ShapeFlagged && mode != domain.ModeBaseline {
		return nil, fmt.Errorf("%s mode is not supported by this argument shape", mode)
	}

	switch s {
	case ShapeBare:
		return []string{image}, nil
	case ShapeTesting:
		return []string{"--testing", image}, nil
	case ShapeFlagged:
		args := []string{"--test"}
		switch mode {
		case domain.ModeBaseline:
		case domain.ModeAccelerated:
			args = append(args, "--jit")
		default:
			return nil, fmt.Errorf("unknown mode %d", mode)
		}
		return append(args, "--image", image), nil
	default:
		return nil, fmt.Errorf("unknown argument shape %d", s)
	}
}

// Convention is the exit code protocol agreed with the emulator
type Convention int

const (
	// PassOnOne treats exit code 1 as a pass and everything else as a failure
	PassOnOne Convention = iota
	// PassOnZero treats exit code 0 as a pass
	PassOnZero
)

// ParseConvention maps a config value to a Convention
func ParseConvention(s string) (Convention, error) {
	switch s {
	case config.ConventionPassOnOne:
		return PassOnOne, nil
	case config.ConventionPassOnZero:
		return PassOnZero, nil
	default:
		return 0, fmt.Errorf("unknown exit code convention %q", s)
	}
}

// IsPass reports whether exitCode means the test image passed
func (c Convention) IsPass(exitCode int) bool {
	if c == PassOnOne {
		return exitCode == 1
	}
	return exitCode == 0
}
