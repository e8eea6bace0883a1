//go:build unix

package execution

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

// sleeperStub writes its pid to pidFile and then sleeps in place
func sleeperStub(t *testing.T, pidFile string) string {
	t.Helper()
	return writeStub(t, t.TempDir(), `echo $$ > "`+pidFile+`"
exec sleep 30`)
}

func waitForPid(t *testing.T, pidFile string) int {
	t.Helper()
	var pid int
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(pidFile)
		if err != nil {
			return false
		}
		pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
		return err == nil && pid > 0
	}, 5*time.Second, 10*time.Millisecond)
	return pid
}

func TestRunner_EmulatorHasOwnProcessGroup(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pid")
	r := newTestRunner(t, sleeperStub(t, pidFile), config.ShapeFlagged, config.ConventionPassOnZero)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, domain.TestCase{Path: "sleep.bin", DisplayName: "sleep.bin"})
		done <- err
	}()

	pid := waitForPid(t, pidFile)
	pgid, err := syscall.Getpgid(pid)
	require.NoError(t, err)

	// A terminal delivers Ctrl-C to the harness's group, which must not include the emulator
	assert.Equal(t, pid, pgid)
	assert.NotEqual(t, syscall.Getpgrp(), pgid)

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, ErrInterrupted))
	case <-time.After(10 * time.Second):
		t.Fatal("emulator was not killed after cancellation")
	}
	assert.Error(t, syscall.Kill(pid, 0), "emulator process still exists")
}

func TestSequential_SIGINTNamesRunningTest(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pid")
	r := newTestRunner(t, sleeperStub(t, pidFile), config.ShapeFlagged, config.ConventionPassOnZero)
	tests := []domain.TestCase{
		{Path: "corpus/a.bin", DisplayName: "a.bin"},
		{Path: "corpus/b.bin", DisplayName: "b.bin"},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	type outcome struct {
		results []domain.Result
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, _, err := NewSequential(r).Execute(ctx, tests)
		done <- outcome{results, err}
	}()

	waitForPid(t, pidFile)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	var got outcome
	select {
	case got = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("run did not stop after SIGINT")
	}

	require.Error(t, got.err)
	var interrupted *InterruptedError
	require.ErrorAs(t, got.err, &interrupted)
	assert.Equal(t, tests[0], interrupted.Test)
	assert.Nil(t, got.results)
}
