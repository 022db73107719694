package model

import (
	"strings"
	"time"
)

// SoxRun records one invocation of the SoX binary
type SoxRun struct {
	ID         string
	Args       []string
	Status     RunStatus
	ExitCode   int       // -1 until the process exits
	Stdout     string    // captured stdout, one line per line read
	Stderr     string    // captured stderr, one line per line read
	Message    string    // text shown in the console area
	LastError  string    // start or timeout error, if any
	StartedAt  time.Time // when the process was started
	FinishedAt time.Time // when the process exited or was killed
}

// SelectMessage picks the stream to display from the exit code: stdout on
// success, stderr otherwise. When exit code 1 leaves stderr blank stdout is
// shown instead, and a successful run with blank stdout falls back to stderr
// (SoX prints --i and help output on either stream depending on the build).
func SelectMessage(exitCode int, stdout, stderr string) string {
	msg := stderr
	if exitCode == 0 {
		msg = stdout
	}
	if strings.TrimSpace(msg) == "" {
		switch exitCode {
		case 1:
			msg = stdout
		case 0:
			msg = stderr
		}
	}
	return msg
}

// Duration returns how long the run took, or zero while it is still active
func (r *SoxRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
