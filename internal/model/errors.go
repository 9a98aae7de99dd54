package model

import "errors"

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrJobAlreadyRunning is returned when a job is triggered on a tracker
	// that is still driving a previous job.
	ErrJobAlreadyRunning = errors.New("job already running")
)
