package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

func TestLineProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewLineProgress(&buf, 10)
	blank := strings.Repeat(" ", len("Running ")+10+len(" (accelerated)"))

	add := domain.TestCase{Path: "c/add.bin", DisplayName: "add.bin   "}
	p.Start(2)
	p.Begin(add)
	assert.Equal(t, "\r"+blank+"\rRunning add.bin", buf.String(), "no newline while the test runs")

	buf.Reset()
	p.End(domain.Result{Test: add, Outcome: domain.OutcomePassed})
	assert.Equal(t, "\r"+blank+"\r", buf.String())

	buf.Reset()
	p.Finish()
	assert.Empty(t, buf.String(), "line is already blank")
}

func TestLineProgress_LongNameWidensBlank(t *testing.T) {
	var buf bytes.Buffer
	p := NewLineProgress(&buf, 2)

	long := domain.TestCase{DisplayName: "a-very-long-image-name.bin", Mode: domain.ModeAccelerated}
	p.Begin(long)
	p.Abort()

	line := "Running a-very-long-image-name.bin (accelerated)"
	assert.Contains(t, buf.String(), "\r"+strings.Repeat(" ", len(line))+"\r")
	assert.True(t, strings.HasSuffix(buf.String(), "\r"+strings.Repeat(" ", len(line))+"\r"))
}

func TestLogProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogProgress(&buf)

	p.Start(2)
	p.Begin(domain.TestCase{DisplayName: "add.bin   "})
	p.End(domain.Result{})
	p.Begin(domain.TestCase{DisplayName: "add.bin   ", Mode: domain.ModeAccelerated})
	p.Finish()

	assert.Equal(t, "Running add.bin\nRunning add.bin (accelerated)\n", buf.String())
}

func TestBarProgress(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	p := NewBarProgress(&buf)

	p.Start(2)
	p.Begin(domain.TestCase{})
	p.End(domain.Result{Outcome: domain.OutcomePassed})
	p.End(domain.Result{Outcome: domain.OutcomeFailed})
	p.Finish()

	assert.Equal(t, 1, p.passed)
	assert.Equal(t, 1, p.failed)
	assert.Contains(t, buf.String(), "failed: 1]")
}

func TestNewProgress(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		style    string
		expected any
	}{
		{config.ProgressAuto, &LogProgress{}}, // a buffer is not a terminal
		{config.ProgressLine, &LineProgress{}},
		{config.ProgressLog, &LogProgress{}},
		{config.ProgressBar, &BarProgress{}},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			p, err := NewProgress(tt.style, &buf, 10)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, p)
		})
	}

	_, err := NewProgress("spinner", &buf, 10)
	assert.Error(t, err)
}
