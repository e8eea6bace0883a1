package discovery

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

// ErrNameTooLong is matched by NameTooLongError
var ErrNameTooLong = errors.New("display name exceeds pad width")

// NameTooLongError reports a display name that does not fit the report column
type NameTooLongError struct {
	Name  string
	Width int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("display name %q is %d columns wide, pad width is %d",
		e.Name, runewidth.StringWidth(e.Name), e.Width)
}

func (e *NameTooLongError) Is(target error) bool {
	return target == ErrNameTooLong
}

// LongNamePolicy decides what happens to names wider than the pad width
type LongNamePolicy int

const (
	// RejectLongNames fails discovery before any test runs
	RejectLongNames LongNamePolicy = iota
	// KeepLongNames emits the name without padding
	KeepLongNames
)

// ParseLongNamePolicy maps a config value to a policy
func ParseLongNamePolicy(s string) (LongNamePolicy, error) {
	switch s {
	case config.LongNamesReject:
		return RejectLongNames, nil
	case config.LongNamesUnpadded:
		return KeepLongNames, nil
	default:
		return 0, fmt.Errorf("unknown long name policy %q", s)
	}
}

// Padder right-pads display names to a fixed column width
type Padder struct {
	Width  int
	Policy LongNamePolicy
}

// Pad returns name followed by spaces up to Width display columns
func (p Padder) Pad(name string) (string, error) {
	if runewidth.StringWidth(name) > p.Width {
		if p.Policy == RejectLongNames {
			return "", &NameTooLongError{Name: name, Width: p.Width}
		}
		return name, nil
	}
	return runewidth.FillRight(name, p.Width), nil
}

// Build turns scanned paths into baseline test cases. Display names are the
// paths with the corpus directory and its separator removed. Every name is
// checked before returning, so a rejected name stops the run before any test starts.
func Build(root string, paths []string, padder Padder) ([]domain.TestCase, error) {
	prefix := filepath.Clean(root) + string(filepath.Separator)

	tests := make([]domain.TestCase, 0, len(paths))
	var errs []error
	for _, path := range paths {
		display, err := padder.Pad(strings.TrimPrefix(path, prefix))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tests = append(tests, domain.TestCase{
			Path:        path,
			DisplayName: display,
			Mode:        domain.ModeBaseline,
		})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return tests, nil
}

// Expand appends an accelerated copy of every test after all baseline
// entries when multiMode is set. The input slice is left untouched.
func Expand(tests []domain.TestCase, multiMode bool) []domain.TestCase {
	if !multiMode {
		return tests
	}

	expanded := make([]domain.TestCase, len(tests), 2*len(tests))
	copy(expanded, tests)
	// Range over the input, never over the slice being appended to
	for _, tc := range tests {
		tc.Mode = domain.ModeAccelerated
		expanded = append(expanded, tc)
	}
	return expanded
}
