package model

import (
	"fmt"
	"time"
)

// JobStatus represents the state of a tracked backend job.
type JobStatus string

const (
	// JobStatusIdle indicates no job has been started yet.
	JobStatusIdle JobStatus = "idle"
	// JobStatusRunning indicates the job has been triggered and is being polled.
	JobStatusRunning JobStatus = "running"
	// JobStatusSucceeded indicates the backend reported the job finished cleanly.
	JobStatusSucceeded JobStatus = "succeeded"
	// JobStatusFailed indicates the job failed (trigger failure, backend
	// reported failure or client-side timeout).
	JobStatusFailed JobStatus = "failed"
)

// Terminal returns true when no further transitions are possible without a
// fresh start.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed
}

// Job is the record of one backend-side long-running operation as observed
// from the client. The tracker that owns it is its only writer.
type Job struct {
	ID           string
	Status       JobStatus
	StartedAt    time.Time
	Result       map[string]any
	Error        string
	PollAttempts int
}

// JobHandle is what a job-initiation endpoint returns. The ID may be empty
// when the backend is fire-and-forget and completion is inferred by polling
// a resource endpoint until its shape changes.
type JobHandle struct {
	ID string
}

// JobProbe is the result of a single status poll.
type JobProbe struct {
	Done   bool
	Result map[string]any
	Error  string
}

// PollPolicy configures how a job is polled. It is immutable for the
// lifetime of one job run.
type PollPolicy struct {
	// Interval is the time between polls.
	Interval time.Duration
	// Timeout is the maximum wall-clock time since the job started before
	// the job is failed client-side.
	Timeout time.Duration
	// MaxAttempts caps the number of polls. Zero means no cap.
	MaxAttempts int
}

// Validate validates the poll policy.
func (p PollPolicy) Validate() error {
	if p.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive: %w", ErrNotValid)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("poll timeout must be positive: %w", ErrNotValid)
	}
	if p.MaxAttempts < 0 {
		return fmt.Errorf("poll max attempts cannot be negative: %w", ErrNotValid)
	}
	return nil
}
