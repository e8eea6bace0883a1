package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"rvtest/internal/config"
	"rvtest/internal/domain"
	"rvtest/internal/execution"
)

const runningPrefix = "Running "

// NewProgress creates the progress reporter for style. The auto style
// rewrites a single line on terminals and logs one line per test otherwise.
func NewProgress(style string, out io.Writer, width int) (execution.Progress, error) {
	switch style {
	case config.ProgressAuto:
		if isTerminal(out) {
			return NewLineProgress(out, width), nil
		}
		return NewLogProgress(out), nil
	case config.ProgressLine:
		return NewLineProgress(out, width), nil
	case config.ProgressLog:
		return NewLogProgress(out), nil
	case config.ProgressBar:
		return NewBarProgress(out), nil
	default:
		return nil, fmt.Errorf("unknown progress style %q", style)
	}
}

// isTerminal reports whether out is a terminal
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// LineProgress shows the running test on one line that each test overwrites
type LineProgress struct {
	out     io.Writer
	blank   string
	pending bool
}

// NewLineProgress creates a LineProgress for display names padded to width
func NewLineProgress(out io.Writer, width int) *LineProgress {
	cols := len(runningPrefix) + width + len(" ") + len(domain.ModeAccelerated.Annotation())
	return &LineProgress{
		out:   out,
		blank: strings.Repeat(" ", cols),
	}
}

// Start implements execution.Progress
func (p *LineProgress) Start(int) {}

// Begin blanks the line and prints the test about to run, without a newline
func (p *LineProgress) Begin(tc domain.TestCase) {
	line := runningPrefix + tc.Label()
	if w := runewidth.StringWidth(line); w > len(p.blank) {
		p.blank = strings.Repeat(" ", w)
	}
	fmt.Fprintf(p.out, "\r%s\r%s", p.blank, line)
	p.pending = true
}

// End blanks the line once the test has finished
func (p *LineProgress) End(domain.Result) {
	p.clear()
}

// Finish implements execution.Progress
func (p *LineProgress) Finish() {
	p.clear()
}

// Abort blanks a line left by an unfinished test
func (p *LineProgress) Abort() {
	p.clear()
}

func (p *LineProgress) clear() {
	if !p.pending {
		return
	}
	fmt.Fprintf(p.out, "\r%s\r", p.blank)
	p.pending = false
}

// LogProgress prints one line per test, for output that is not a terminal
type LogProgress struct {
	out io.Writer
}

// NewLogProgress creates a LogProgress writing to out
func NewLogProgress(out io.Writer) *LogProgress {
	return &LogProgress{out: out}
}

func (p *LogProgress) Start(int) {}

func (p *LogProgress) Begin(tc domain.TestCase) {
	fmt.Fprintln(p.out, runningPrefix+tc.Label())
}

func (p *LogProgress) End(domain.Result) {}

func (p *LogProgress) Finish() {}

func (p *LogProgress) Abort() {}

// BarProgress draws a progress bar with live pass and fail counts
type BarProgress struct {
	out    io.Writer
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// NewBarProgress creates a BarProgress writing to out
func NewBarProgress(out io.Writer) *BarProgress {
	return &BarProgress{out: out}
}

// Start creates the bar for total tests
func (p *BarProgress) Start(total int) {
	p.passed, p.failed = 0, 0
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(p.describe()),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(p.out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func (p *BarProgress) Begin(domain.TestCase) {}

// End advances the bar and updates the counts
func (p *BarProgress) End(result domain.Result) {
	if result.Passed() {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Describe(p.describe())
	_ = p.bar.Add(1)
}

// Finish completes the bar
func (p *BarProgress) Finish() {
	_ = p.bar.Finish()
}

// Abort leaves the bar where it stopped
func (p *BarProgress) Abort() {
	_ = p.bar.Exit()
	fmt.Fprint(p.out, "\n")
}

func (p *BarProgress) describe() string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", p.passed) +
		" | " +
		color.RedString("failed: %d]", p.failed)
}
