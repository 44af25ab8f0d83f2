package server

import (
	"sort"
	"sync"
	"time"

	"github.com/cwbudde/countdown/internal/report"
	"github.com/google/uuid"
)

// JobState represents the current state of a job
type JobState string

const (
	StatePending   JobState = "pending"
	StateRunning   JobState = "running"
	StateCompleted JobState = "completed"
	StateFailed    JobState = "failed"
	StateCancelled JobState = "cancelled"
)

// Terminal reports whether a job in this state will not change any more
func (s JobState) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// JobRequest is the body of POST /api/v1/jobs
type JobRequest struct {
	Numbers []int  `json:"numbers" validate:"required,len=6,unique,dive,gte=0"`
	Goal    int    `json:"goal"`
	Mode    string `json:"mode" validate:"omitempty,oneof=plain resilient"`
}

// Job represents one solve request and its outcome
type Job struct {
	ID        string       `json:"id"`
	State     JobState     `json:"state"`
	Request   JobRequest   `json:"request"`
	Result    *report.View `json:"result,omitempty"`
	StartTime time.Time    `json:"startTime"`
	EndTime   *time.Time   `json:"endTime,omitempty"`
	Error     string       `json:"error,omitempty"`

	// seq is the creation order within the JobManager
	seq uint64
}

func (j *Job) clone() *Job {
	c := *j
	c.Request.Numbers = append([]int(nil), j.Request.Numbers...)
	if j.Result != nil {
		r := *j.Result
		c.Result = &r
	}
	if j.EndTime != nil {
		t := *j.EndTime
		c.EndTime = &t
	}
	return &c
}

// JobManager manages the lifecycle of jobs. Lookups return snapshots, so
// callers never share a Job with the worker updating it.
type JobManager struct {
	mu          sync.RWMutex
	jobs        map[string]*Job
	nextSeq     uint64
	broadcaster *EventBroadcaster
}

// NewJobManager creates a new JobManager
func NewJobManager() *JobManager {
	return &JobManager{
		jobs:        make(map[string]*Job),
		broadcaster: NewEventBroadcaster(),
	}
}

// CreateJob registers a pending job for req
func (jm *JobManager) CreateJob(req JobRequest) *Job {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	if req.Mode == "" {
		req.Mode = "plain"
	}
	job := &Job{
		ID:        uuid.New().String(),
		State:     StatePending,
		Request:   req,
		StartTime: time.Now(),
		seq:       jm.nextSeq,
	}
	jm.nextSeq++

	jm.jobs[job.ID] = job
	return job.clone()
}

// GetJob retrieves a snapshot of a job by ID
func (jm *JobManager) GetJob(id string) (*Job, bool) {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	job, exists := jm.jobs[id]
	if !exists {
		return nil, false
	}
	return job.clone(), true
}

// ListJobs returns snapshots of all jobs in creation order
func (jm *JobManager) ListJobs() []*Job {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	jobs := make([]*Job, 0, len(jm.jobs))
	for _, job := range jm.jobs {
		jobs = append(jobs, job.clone())
	}
	sort.Slice(jobs, func(a, b int) bool {
		return jobs[a].seq < jobs[b].seq
	})
	return jobs
}

// UpdateJob atomically updates a job using the provided function and
// publishes the resulting state to stream subscribers
func (jm *JobManager) UpdateJob(id string, updateFn func(*Job)) error {
	jm.mu.Lock()
	job, exists := jm.jobs[id]
	if !exists {
		jm.mu.Unlock()
		return &JobNotFoundError{ID: id}
	}
	updateFn(job)
	event := newJobEvent(job)
	jm.mu.Unlock()

	jm.broadcaster.Broadcast(event)
	return nil
}

// GetRunningJobs returns all jobs currently in the running state
func (jm *JobManager) GetRunningJobs() []*Job {
	jm.mu.RLock()
	defer jm.mu.RUnlock()

	runningJobs := make([]*Job, 0)
	for _, job := range jm.jobs {
		if job.State == StateRunning {
			runningJobs = append(runningJobs, job.clone())
		}
	}
	return runningJobs
}
