package model

// RunStatus represents the status of a SoX invocation
type RunStatus string

const (
	// RunStatusPending means the run was created but the process has not started
	RunStatusPending RunStatus = "Pending"

	// RunStatusRunning means the SoX process is executing
	RunStatusRunning RunStatus = "Running"

	// RunStatusCompleted means SoX exited with status 0
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusFailed means SoX could not start or exited non-zero
	RunStatusFailed RunStatus = "Failed"

	// RunStatusTimedOut means SoX was killed after exceeding the time limit
	RunStatusTimedOut RunStatus = "TimedOut"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while a process may still be running
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusPending || rs == RunStatusRunning
}

// IsFinished returns true if the run reached a final state
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusFailed || rs == RunStatusTimedOut
}
