// Package jobtracker drives backend-side long-running jobs (audits,
// competitor analyses, keyword research...) from trigger to completion.
//
// A Tracker owns exactly one job at a time: it triggers the job, polls its
// status on a jittered fixed-period ticker and exposes a read-only snapshot
// of the job record. Polls run inline in the tracker's loop goroutine, so at
// most one poll is ever in flight and results cannot be applied out of
// order.
package jobtracker

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"github.com/oklog/ulid/v2"

	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

const (
	defaultInterval = 5 * time.Second
	defaultTimeout  = 10 * time.Minute

	// timeoutError is the job error recorded when the client gives up on a
	// job without backend confirmation (wall-clock budget or attempt cap).
	timeoutError = "timeout"
)

// TriggerFunc starts the backend job. The returned handle may be nil or
// carry an empty ID when the backend is fire-and-forget.
type TriggerFunc func(ctx context.Context) (*model.JobHandle, error)

// StatusFunc checks the backend job once. A returned error is treated as a
// transient poll failure and retried on the next tick, unless it is marked
// terminal with NewTerminalError.
type StatusFunc func(ctx context.Context) (model.JobProbe, error)

// NewTerminalError marks a status check error as terminal: the tracker
// fails the job instead of retrying.
func NewTerminalError(err error) error {
	return &terminalError{err: err}
}

type terminalError struct {
	err error
}

func (e *terminalError) Error() string { return e.err.Error() }
func (e *terminalError) Unwrap() error { return e.err }

// TrackerConfig is the configuration for a job tracker.
type TrackerConfig struct {
	Policy model.PollPolicy
	Logger log.Logger
}

func (c *TrackerConfig) defaults() error {
	if c.Policy.Interval == 0 {
		c.Policy.Interval = defaultInterval
	}
	if c.Policy.Timeout == 0 {
		c.Policy.Timeout = defaultTimeout
	}
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("invalid poll policy: %w", err)
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "jobtracker.Tracker"})
	return nil
}

// Tracker tracks a single backend job at a time. Instances are independent,
// each owns its job record exclusively and is safe for concurrent use.
type Tracker struct {
	policy model.PollPolicy
	logger log.Logger

	mu     sync.Mutex
	job    model.Job
	run    *jobRun
	active bool
}

// jobRun is the per-run bookkeeping. A fresh Start creates a new one, so a
// stale run resolving late can never touch the state of a newer run.
type jobRun struct {
	stopC   chan struct{}
	doneC   chan struct{}
	stopped bool
}

// NewTracker creates a new job tracker.
func NewTracker(cfg TrackerConfig) (*Tracker, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Tracker{
		policy: cfg.Policy,
		logger: cfg.Logger,
		job:    model.Job{Status: model.JobStatusIdle},
	}, nil
}

// Start triggers a new job and begins polling it.
//
// It is rejected with model.ErrJobAlreadyRunning while a previous run is
// still being driven: duplicate triggers for the same logical job are
// ignored rather than queued, the backend has no idempotent job keys.
//
// The trigger call runs synchronously; a trigger failure fails the job
// without ever starting the poll loop. The poll loop itself runs in a
// goroutine, use Done to wait for a terminal state.
func (t *Tracker) Start(ctx context.Context, trigger TriggerFunc, fetch StatusFunc) error {
	if trigger == nil || fetch == nil {
		return fmt.Errorf("trigger and status functions are required: %w", model.ErrNotValid)
	}

	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return fmt.Errorf("tracker is busy: %w", model.ErrJobAlreadyRunning)
	}

	run := &jobRun{
		stopC: make(chan struct{}),
		doneC: make(chan struct{}),
	}
	t.run = run
	t.active = true
	runID := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	t.job = model.Job{
		ID:        runID,
		Status:    model.JobStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	t.mu.Unlock()

	t.logger.Debugf("Triggering job %s", runID)

	handle, err := trigger(ctx)

	t.mu.Lock()
	if run.stopped {
		// Cancelled while the trigger was in flight.
		t.mu.Unlock()
		return nil
	}
	if err != nil {
		t.terminate(run, model.JobStatusFailed, nil, fmt.Sprintf("trigger failed: %s", err))
		t.mu.Unlock()
		return nil
	}
	if handle != nil && handle.ID != "" {
		// Prefer the backend-assigned job ID over our run ID.
		t.job.ID = handle.ID
	}
	jobID := t.job.ID
	t.mu.Unlock()

	t.logger.Infof("Job %s triggered, polling every %s (timeout %s)", jobID, t.policy.Interval, t.policy.Timeout)

	go t.pollLoop(ctx, run, fetch)

	return nil
}

// Cancel stops polling unconditionally and is idempotent. It leaves the job
// status as-is: it is teardown, not failure. A poll already in flight when
// Cancel lands will never mutate the job record afterwards.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.run == nil || t.run.stopped {
		return
	}

	t.run.stopped = true
	close(t.run.stopC)
	t.active = false
	t.logger.Debugf("Job %s tracking cancelled", t.job.ID)
}

// State returns a read-only snapshot of the tracked job.
func (t *Tracker) State() model.Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	job := t.job
	if job.Result != nil {
		result := make(map[string]any, len(job.Result))
		for k, v := range job.Result {
			result[k] = v
		}
		job.Result = result
	}
	return job
}

// Done returns a channel closed when the current run reaches a terminal
// state. If no run was ever started the channel is already closed. Note the
// channel is never closed by Cancel: a cancelled run has no terminal state.
func (t *Tracker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.run == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return t.run.doneC
}

func (t *Tracker) pollLoop(ctx context.Context, run *jobRun, fetch StatusFunc) {
	ticker := jitterbug.New(t.policy.Interval, &jitterbug.Norm{Stdev: t.policy.Interval / 10})
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Debugf("Context cancelled, stopping poll loop")
			return
		case <-run.stopC:
			return
		case <-ticker.C:
		}

		t.mu.Lock()
		if run.stopped {
			t.mu.Unlock()
			return
		}

		// Timeout is wall-clock based on the job start, evaluated at each
		// tick, so it degrades gracefully with coarse intervals.
		if time.Since(t.job.StartedAt) > t.policy.Timeout {
			t.terminate(run, model.JobStatusFailed, nil, timeoutError)
			t.mu.Unlock()
			return
		}

		t.job.PollAttempts++
		attempts := t.job.PollAttempts
		jobID := t.job.ID
		t.mu.Unlock()

		probe, err := fetch(ctx)

		t.mu.Lock()
		if run.stopped {
			// Cancelled while the poll was in flight: drop the result.
			t.mu.Unlock()
			return
		}

		var termErr *terminalError
		switch {
		case errors.As(err, &termErr):
			t.terminate(run, model.JobStatusFailed, nil, err.Error())
			t.mu.Unlock()
			return

		case err != nil:
			// Transient network blips must not abort a long-running backend
			// job: count the attempt and keep polling.
			t.logger.Warningf("Poll %d of job %s failed, retrying: %s", attempts, jobID, err)

		case probe.Done && probe.Error != "":
			t.terminate(run, model.JobStatusFailed, nil, probe.Error)
			t.mu.Unlock()
			return

		case probe.Done:
			t.terminate(run, model.JobStatusSucceeded, probe.Result, "")
			t.mu.Unlock()
			return
		}

		if t.policy.MaxAttempts > 0 && attempts >= t.policy.MaxAttempts {
			t.terminate(run, model.JobStatusFailed, nil, timeoutError)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
	}
}

// terminate applies the terminal transition. Must be called with the lock
// held and only for a run that is not stopped.
func (t *Tracker) terminate(run *jobRun, status model.JobStatus, result map[string]any, errMsg string) {
	t.job.Status = status
	t.job.Result = result
	t.job.Error = errMsg
	t.active = false
	run.stopped = true
	close(run.doneC)

	switch status {
	case model.JobStatusSucceeded:
		t.logger.Infof("Job %s succeeded after %d polls", t.job.ID, t.job.PollAttempts)
	default:
		t.logger.Warningf("Job %s failed after %d polls: %s", t.job.ID, t.job.PollAttempts, errMsg)
	}
}
