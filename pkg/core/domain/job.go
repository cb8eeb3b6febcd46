package domain

import (
	"errors"
	"time"
)

// JobState is the lifecycle stage of a background job.
type JobState string

const (
	JobQueued  JobState = "queued"
	JobRunning JobState = "running"
	JobDone    JobState = "done"
	JobFailed  JobState = "failed"
)

// ErrQueueFull signals that the dispatcher cannot accept more jobs.
var ErrQueueFull = errors.New("job queue full")

// ErrDispatcherStopped signals a submission to a dispatcher that is not running.
var ErrDispatcherStopped = errors.New("dispatcher not running")

// Job is the pollable status of a background job.
type Job struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	State     JobState   `json:"state"`
	Error     string     `json:"error,omitempty"`
	Result    any        `json:"result,omitempty"`
	Submitted time.Time  `json:"submitted"`
	Finished  *time.Time `json:"finished,omitempty"`
}

// Terminal reports whether the job has finished.
func (j Job) Terminal() bool {
	return j.State == JobDone || j.State == JobFailed
}
