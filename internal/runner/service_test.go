package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakurazen/soxgui/internal/model"
)

const helperEnv = "GO_WANT_HELPER_PROCESS"

// helperArgs makes the test binary act as a fake sox in the given mode
func helperArgs(mode string) []string {
	return []string{"-test.run=TestHelperProcess", "--", mode}
}

func newHelperService(t *testing.T) *Service {
	t.Helper()
	t.Setenv(helperEnv, "1")
	return NewService(os.Args[0])
}

// TestHelperProcess is not a real test. It is executed as a child process by
// the tests below and behaves according to the mode after "--".
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		os.Exit(3)
	}

	switch args[1] {
	case "stdout":
		fmt.Println("Input File     : 'in.wav'")
		fmt.Println("Channels       : 2")
		os.Exit(0)
	case "stderr":
		fmt.Fprintln(os.Stderr, "sox FAIL formats: can't open input file `missing.wav'")
		os.Exit(2)
	case "exit1":
		fmt.Println("Usage summary: [gopts] [[fopts] infile]... [fopts] outfile")
		os.Exit(1)
	case "quiet-ok":
		fmt.Fprintln(os.Stderr, "written to stderr")
		os.Exit(0)
	case "crlf":
		fmt.Print("line one\r\nline two\r\n")
		os.Exit(0)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	}
	os.Exit(3)
}

func TestNewService(t *testing.T) {
	service := NewService("/usr/bin/sox")

	assert.Equal(t, "/usr/bin/sox", service.soxPath)
	assert.Equal(t, DefaultTimeout, service.timeout)
	assert.NotNil(t, service.runs)

	_, ok := service.LastRun()
	assert.False(t, ok)
}

func TestSetTimeout(t *testing.T) {
	service := NewService("sox")

	service.SetTimeout(30 * time.Second)
	assert.Equal(t, 30*time.Second, service.timeout)

	service.SetTimeout(0)
	assert.Equal(t, DefaultTimeout, service.timeout)
}

func TestRun_Stdout(t *testing.T) {
	service := newHelperService(t)

	run, err := service.Run(context.Background(), helperArgs("stdout"))
	require.NoError(t, err)

	assert.Equal(t, model.RunStatusCompleted, run.Status)
	assert.Equal(t, 0, run.ExitCode)
	assert.Contains(t, run.Message, "Channels       : 2")
	assert.Equal(t, run.Stdout, run.Message)
	assert.True(t, strings.HasPrefix(run.ID, RunIDPrefix))
	assert.False(t, run.FinishedAt.IsZero())
}

func TestRun_StderrOnFailure(t *testing.T) {
	service := newHelperService(t)

	run, err := service.Run(context.Background(), helperArgs("stderr"))
	require.NoError(t, err, "a non-zero exit is reported through the run, not as an error")

	assert.Equal(t, model.RunStatusFailed, run.Status)
	assert.Equal(t, 2, run.ExitCode)
	assert.Contains(t, run.Message, "can't open input file")
	assert.Empty(t, run.LastError)
}

func TestRun_ExitOneFallsBackToStdout(t *testing.T) {
	service := newHelperService(t)

	run, err := service.Run(context.Background(), helperArgs("exit1"))
	require.NoError(t, err)

	assert.Equal(t, 1, run.ExitCode)
	assert.Contains(t, run.Message, "Usage summary")
}

func TestRun_SuccessFallsBackToStderr(t *testing.T) {
	service := newHelperService(t)

	run, err := service.Run(context.Background(), helperArgs("quiet-ok"))
	require.NoError(t, err)

	assert.Equal(t, model.RunStatusCompleted, run.Status)
	assert.Equal(t, "written to stderr\n", run.Message)
}

func TestRun_NormalisesLineEndings(t *testing.T) {
	service := newHelperService(t)

	run, err := service.Run(context.Background(), helperArgs("crlf"))
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two\n", run.Stdout)
}

func TestRun_Timeout(t *testing.T) {
	service := newHelperService(t)
	service.SetTimeout(200 * time.Millisecond)

	start := time.Now()
	run, err := service.Run(context.Background(), helperArgs("sleep"))
	require.ErrorIs(t, err, ErrTimeout)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, model.RunStatusTimedOut, run.Status)
	assert.Equal(t, TimeoutMessage, run.Message)
}

func TestRun_SoxPathNotSet(t *testing.T) {
	service := NewService("")

	run, err := service.Run(context.Background(), []string{"-h"})
	assert.ErrorIs(t, err, ErrSoxPathNotSet)
	assert.Nil(t, run)

	_, ok := service.LastRun()
	assert.False(t, ok, "nothing should be recorded without a binary")
}

func TestRun_StartFailure(t *testing.T) {
	service := NewService(filepath.Join(t.TempDir(), "no-such-sox"))

	run, err := service.Run(context.Background(), []string{"-h"})
	require.ErrorIs(t, err, ErrStart)
	require.NotNil(t, run)

	assert.Equal(t, model.RunStatusFailed, run.Status)
	assert.NotEmpty(t, run.LastError)
}

func TestRun_Busy(t *testing.T) {
	service := newHelperService(t)
	service.SetTimeout(3 * time.Second)

	running := make(chan struct{})
	var once sync.Once
	service.SetUpdateCallback(func(run *model.SoxRun) {
		if run.Status == model.RunStatusRunning {
			once.Do(func() { close(running) })
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = service.Run(context.Background(), helperArgs("sleep"))
	}()

	select {
	case <-running:
	case <-time.After(5 * time.Second):
		t.Fatal("first run never started")
	}

	_, err := service.Run(context.Background(), helperArgs("stdout"))
	assert.ErrorIs(t, err, ErrBusy)

	<-done
}

func TestRun_CallbackReceivesSnapshots(t *testing.T) {
	service := newHelperService(t)

	var mu sync.Mutex
	var updates []*model.SoxRun
	service.SetUpdateCallback(func(run *model.SoxRun) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, run)
	})

	run, err := service.Run(context.Background(), helperArgs("stdout"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(updates), 3)
	assert.Equal(t, model.RunStatusPending, updates[0].Status)
	assert.Equal(t, model.RunStatusRunning, updates[1].Status)
	assert.Equal(t, model.RunStatusCompleted, updates[len(updates)-1].Status)

	// Snapshots are independent copies
	updates[0].Args[0] = "mutated"
	stored, ok := service.GetRun(run.ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", stored.Args[0])
}

func TestLastRunAndGetRun(t *testing.T) {
	service := newHelperService(t)

	first, err := service.Run(context.Background(), helperArgs("stdout"))
	require.NoError(t, err)
	second, err := service.Run(context.Background(), helperArgs("exit1"))
	require.NoError(t, err)

	last, ok := service.LastRun()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)

	got, ok := service.GetRun(first.ID)
	require.True(t, ok)
	assert.Equal(t, model.RunStatusCompleted, got.Status)

	_, ok = service.GetRun("run-unknown")
	assert.False(t, ok)
}

func TestRun_KeepsLimitedHistory(t *testing.T) {
	service := newHelperService(t)

	first, err := service.Run(context.Background(), helperArgs("stdout"))
	require.NoError(t, err)
	for i := 0; i < MaxKeptRuns; i++ {
		_, err := service.Run(context.Background(), helperArgs("stdout"))
		require.NoError(t, err)
	}

	service.mu.RLock()
	assert.Len(t, service.runs, MaxKeptRuns)
	assert.Len(t, service.order, MaxKeptRuns)
	assert.Empty(t, service.activeID)
	service.mu.RUnlock()

	_, ok := service.GetRun(first.ID)
	assert.False(t, ok, "oldest run should be dropped")

	last, ok := service.LastRun()
	require.True(t, ok)
	assert.Equal(t, model.RunStatusCompleted, last.Status)
}

func TestRun_StartFailureReleasesService(t *testing.T) {
	service := newHelperService(t)
	service.SetSoxPath(filepath.Join(t.TempDir(), "no-such-sox"))

	_, err := service.Run(context.Background(), []string{"-h"})
	require.ErrorIs(t, err, ErrStart)

	service.SetSoxPath(os.Args[0])
	run, err := service.Run(context.Background(), helperArgs("stdout"))
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusCompleted, run.Status)
}

func TestCheckInstalled(t *testing.T) {
	_, err := CheckInstalled(context.Background(), " ")
	assert.ErrorIs(t, err, ErrSoxPathNotSet)

	_, err = CheckInstalled(context.Background(), filepath.Join(t.TempDir(), "no-such-sox"))
	assert.Error(t, err)
}

func TestGenerateRunID(t *testing.T) {
	a := generateRunID()
	b := generateRunID()

	assert.True(t, strings.HasPrefix(a, RunIDPrefix))
	assert.NotEqual(t, a, b)
}
