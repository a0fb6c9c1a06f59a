package model

// RunState represents the lifecycle state of a batch run
type RunState string

const (
	// RunStateIdle means the runner was created but not started
	RunStateIdle RunState = "Idle"

	// RunStateRunning means files are being converted
	RunStateRunning RunState = "Running"

	// RunStateCompleted means every file in the batch was converted
	RunStateCompleted RunState = "Completed"

	// RunStateFailed means a conversion failed and the batch was aborted
	RunStateFailed RunState = "Failed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true if the run is in progress
func (rs RunState) IsActive() bool {
	return rs == RunStateRunning
}

// IsFinished returns true if the run reached a terminal state (completed or failed)
func (rs RunState) IsFinished() bool {
	return rs == RunStateCompleted || rs == RunStateFailed
}
