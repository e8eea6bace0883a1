package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

// Glyphs are the markers printed in the result column
type Glyphs struct {
	Pass string
	Fail string
}

var (
	// EmojiGlyphs are the default result markers
	EmojiGlyphs = Glyphs{Pass: "✅", Fail: "❌"}
	// ASCIIGlyphs are used with --ascii
	ASCIIGlyphs = Glyphs{Pass: "PASS", Fail: "FAIL"}
)

// Formatter formats and displays output
type Formatter struct {
	out    io.Writer
	width  int
	glyphs Glyphs
}

// NewFormatter creates a new Formatter for the report column width in cfg
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	glyphs := EmojiGlyphs
	if cfg.ASCII {
		glyphs = ASCIIGlyphs
	}
	return &Formatter{
		out:    out,
		width:  cfg.PadWidth,
		glyphs: glyphs,
	}
}

// PrintReport prints one row per result in work-list order followed by the
// aggregate pass count.
func (f *Formatter) PrintReport(results []domain.Result) {
	header := color.New(color.Bold)
	header.Fprintf(f.out, "%s\t%s\n", runewidth.FillRight("Test Name", f.width), "Passed")
	fmt.Fprintln(f.out, strings.Repeat("-", f.width+10))

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	for _, r := range results {
		fmt.Fprintf(f.out, "%s\t", r.Test.DisplayName)
		if r.Passed() {
			pass.Fprint(f.out, f.glyphs.Pass)
		} else {
			fail.Fprint(f.out, f.glyphs.Fail)
		}
		if a := r.Test.Mode.Annotation(); a != "" {
			fmt.Fprintf(f.out, " %s", a)
		}
		fmt.Fprintln(f.out)
	}

	summary := domain.Summarize(results)
	total := fail
	if summary.Passed == summary.Total {
		total = pass
	}
	fmt.Fprint(f.out, "\n\t")
	total.Fprintf(f.out, "Passed %d/%d", summary.Passed, summary.Total)
	fmt.Fprintln(f.out)
}

// PrintTestList prints the work list with the command each test would run
func (f *Formatter) PrintTestList(tests []domain.TestCase, command func(domain.TestCase) ([]string, error)) error {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test(s):\n\n", len(tests))

	branch := color.New(color.FgCyan)
	for i, tc := range tests {
		connector := "├── "
		if i == len(tests)-1 {
			connector = "└── "
		}

		args, err := command(tc)
		if err != nil {
			return fmt.Errorf("build command for %s: %w", tc.Label(), err)
		}
		branch.Fprintf(f.out, "%s%s", connector, tc.DisplayName)
		fmt.Fprintf(f.out, "\t%s\n", color.YellowString(strings.Join(args, " ")))
	}
	return nil
}

// PrintInterrupted reports the test that was running when the run was cancelled
func (f *Formatter) PrintInterrupted(tc domain.TestCase) {
	color.New(color.FgYellow).Fprintf(f.out, "Interrupted: %s\n", tc.Label())
}
