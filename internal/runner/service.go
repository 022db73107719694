package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sakurazen/soxgui/internal/model"
	"github.com/sakurazen/soxgui/internal/platform"
)

// Execution limits
const (
	DefaultTimeout      = 1 * time.Minute
	VersionCheckTimeout = 10 * time.Second

	// Longest single line read from SoX; help output lines are far shorter
	MaxLineBytes = 1024 * 1024

	// Number of finished runs kept for GetRun
	MaxKeptRuns = 20

	RunIDPrefix = "run-"
	VersionFlag = "--version"
)

// TimeoutMessage is shown in the console when SoX exceeds the time limit
const TimeoutMessage = "SoX did not finish within the time limit."

var (
	ErrSoxPathNotSet = errors.New("sox path is not configured")
	ErrBusy          = errors.New("another sox process is still running")
	ErrStart         = errors.New("failed to start sox")
	ErrTimeout       = errors.New("sox did not finish within the time limit")
)

// Service runs SoX one process at a time
type Service struct {
	soxPath string
	timeout time.Duration

	runs     map[string]*model.SoxRun
	order    []string // run IDs, oldest first
	activeID string   // run whose process may still be executing
	mu       sync.RWMutex
	onUpdate func(*model.SoxRun) // callback for UI updates
}

// NewService creates a runner for the binary at soxPath
func NewService(soxPath string) *Service {
	return &Service{
		soxPath: soxPath,
		timeout: DefaultTimeout,
		runs:    make(map[string]*model.SoxRun),
	}
}

// SetUpdateCallback sets the callback function for run updates. The callback
// receives a snapshot, never the live record.
func (s *Service) SetUpdateCallback(callback func(*model.SoxRun)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetSoxPath changes the binary used by subsequent runs
func (s *Service) SetSoxPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soxPath = strings.TrimSpace(path)
}

// SetTimeout changes the limit of subsequent runs; non-positive values restore the default
func (s *Service) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = timeout
}

// Run executes SoX with args and blocks until it exits or the time limit passes.
// A non-zero exit status is not an error: it is recorded in the run and its
// stderr becomes the message. Errors are returned for a missing binary path, a
// concurrent run, a start failure and a timeout.
func (s *Service) Run(ctx context.Context, args []string) (*model.SoxRun, error) {
	run, path, timeout, err := s.newRun(args)
	if err != nil {
		return nil, err
	}
	s.notifyUpdate(run)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	platform.HideWindow(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return s.fail(run, fmt.Errorf("%w: stdout pipe: %v", ErrStart, err))
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return s.fail(run, fmt.Errorf("%w: stderr pipe: %v", ErrStart, err))
	}

	log.Printf("Starting sox run %s: %s %s", run.ID, path, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		return s.fail(run, fmt.Errorf("%w: %v", ErrStart, err))
	}

	s.mu.Lock()
	run.Status = model.RunStatusRunning
	s.mu.Unlock()
	s.notifyUpdate(run)

	var outBuf, errBuf strings.Builder
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		readLines(stdout, &outBuf)
	}()
	go func() {
		defer wg.Done()
		readLines(stderr, &errBuf)
	}()

	// Pipes must be drained before Wait closes them
	wg.Wait()
	waitErr := cmd.Wait()

	s.mu.Lock()
	run.Stdout = outBuf.String()
	run.Stderr = errBuf.String()
	run.FinishedAt = time.Now()
	if cmd.ProcessState != nil {
		run.ExitCode = cmd.ProcessState.ExitCode()
	}

	var result error
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		run.Status = model.RunStatusTimedOut
		run.Message = TimeoutMessage
		run.LastError = ErrTimeout.Error()
		result = fmt.Errorf("%w (%s)", ErrTimeout, timeout)
	case ctx.Err() != nil:
		run.Status = model.RunStatusFailed
		run.LastError = ctx.Err().Error()
		run.Message = model.SelectMessage(run.ExitCode, run.Stdout, run.Stderr)
		result = ctx.Err()
	case waitErr != nil && !errors.As(waitErr, &exitErr):
		run.Status = model.RunStatusFailed
		run.LastError = waitErr.Error()
		run.Message = model.SelectMessage(run.ExitCode, run.Stdout, run.Stderr)
		result = fmt.Errorf("wait for sox: %w", waitErr)
	case run.ExitCode == 0:
		run.Status = model.RunStatusCompleted
		run.Message = model.SelectMessage(run.ExitCode, run.Stdout, run.Stderr)
	default:
		run.Status = model.RunStatusFailed
		run.Message = model.SelectMessage(run.ExitCode, run.Stdout, run.Stderr)
	}
	s.activeID = ""
	s.mu.Unlock()

	log.Printf("Sox run %s finished: status=%s exit=%d duration=%s", run.ID, run.Status, run.ExitCode, run.Duration())
	s.notifyUpdate(run)

	return s.snapshot(run), result
}

// GetRun returns a snapshot of a run by ID
func (s *Service) GetRun(runID string) (*model.SoxRun, bool) {
	s.mu.RLock()
	run, exists := s.runs[runID]
	s.mu.RUnlock()
	if !exists {
		return nil, false
	}
	return s.snapshot(run), true
}

// LastRun returns a snapshot of the most recent run
func (s *Service) LastRun() (*model.SoxRun, bool) {
	s.mu.RLock()
	var id string
	if len(s.order) > 0 {
		id = s.order[len(s.order)-1]
	}
	s.mu.RUnlock()
	if id == "" {
		return nil, false
	}
	return s.GetRun(id)
}

// newRun validates the configuration and registers a pending run
func (s *Service) newRun(args []string) (*model.SoxRun, string, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.soxPath == "" {
		return nil, "", 0, ErrSoxPathNotSet
	}
	if s.activeID != "" {
		return nil, "", 0, ErrBusy
	}

	run := &model.SoxRun{
		ID:        generateRunID(),
		Args:      append([]string(nil), args...),
		Status:    model.RunStatusPending,
		ExitCode:  -1,
		StartedAt: time.Now(),
	}
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	s.activeID = run.ID
	for len(s.order) > MaxKeptRuns {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
	return run, s.soxPath, s.timeout, nil
}

// fail marks a run that never produced an exit status
func (s *Service) fail(run *model.SoxRun, err error) (*model.SoxRun, error) {
	log.Printf("Sox run %s failed: %v", run.ID, err)

	s.mu.Lock()
	run.Status = model.RunStatusFailed
	run.LastError = err.Error()
	run.FinishedAt = time.Now()
	s.activeID = ""
	s.mu.Unlock()

	s.notifyUpdate(run)
	return s.snapshot(run), err
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(run *model.SoxRun) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(s.snapshot(run))
	}
}

func (s *Service) snapshot(run *model.SoxRun) *model.SoxRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := *run
	c.Args = append([]string(nil), run.Args...)
	return &c
}

// readLines copies r into b one line at a time, normalising line endings
func readLines(r io.Reader, b *strings.Builder) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for scanner.Scan() {
		b.WriteString(strings.TrimRight(scanner.Text(), "\r"))
		b.WriteByte('\n')
	}
	// Keep draining so the process never blocks on a full pipe
	_, _ = io.Copy(io.Discard, r)
}

// CheckInstalled verifies that the binary at soxPath runs and returns its version line
func CheckInstalled(ctx context.Context, soxPath string) (string, error) {
	if strings.TrimSpace(soxPath) == "" {
		return "", ErrSoxPathNotSet
	}

	ctx, cancel := context.WithTimeout(ctx, VersionCheckTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, soxPath, VersionFlag)
	platform.HideWindow(cmd)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("sox not found or not executable: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// generateRunID generates a time-ordered unique run ID
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
