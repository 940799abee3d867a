package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/user/homeportal/internal/util"
)

// Job is a named task run on a fixed interval. Runs of the same job may
// overlap when one takes longer than the interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error

	handle     *gocron.Job
	lastError  error
	errorCount int
	mu         sync.RWMutex
}

// JobStatus represents the status of a job.
type JobStatus struct {
	Name       string        `json:"name"`
	Interval   time.Duration `json:"interval"`
	LastRun    time.Time     `json:"last_run"`
	NextRun    time.Time     `json:"next_run"`
	RunCount   int           `json:"run_count"`
	LastError  string        `json:"last_error,omitempty"`
	ErrorCount int           `json:"error_count"`
}

// Scheduler runs jobs on gocron. Every job fires once immediately on Start.
type Scheduler struct {
	ctx  context.Context
	cron *gocron.Scheduler
	jobs []*Job
	mu   sync.RWMutex
}

// NewScheduler creates a scheduler whose job contexts derive from ctx.
func NewScheduler(ctx context.Context) *Scheduler {
	return &Scheduler{
		ctx:  ctx,
		cron: gocron.NewScheduler(time.Local),
		jobs: make([]*Job, 0),
	}
}

// AddJob registers a job. It must be called before Start.
func (s *Scheduler) AddJob(job *Job) error {
	if job.Interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive", job.Name)
	}

	handle, err := s.cron.Every(job.Interval).Tag(job.Name).Do(s.runJob, job)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", job.Name, err)
	}

	s.mu.Lock()
	job.handle = handle
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()
	return nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	util.Info("Scheduler started with %d jobs", len(s.jobs))
	s.cron.StartAsync()
}

// Stop halts future runs. Runs already in flight see their context
// cancelled only when the parent context is.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	util.Info("Scheduler stopped")
}

func (s *Scheduler) runJob(job *Job) {
	util.Debug("Running job: %s", job.Name)

	ctx, cancel := context.WithTimeout(s.ctx, job.Interval)
	defer cancel()

	err := job.Run(ctx)

	job.mu.Lock()
	defer job.mu.Unlock()
	if err != nil {
		job.lastError = err
		job.errorCount++
		util.Warn("Job %s failed: %v", job.Name, err)
		return
	}
	job.lastError = nil
}

// JobStatuses returns the status of all jobs in registration order.
func (s *Scheduler) JobStatuses() []JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make([]JobStatus, len(s.jobs))
	for i, job := range s.jobs {
		job.mu.RLock()
		status := JobStatus{
			Name:       job.Name,
			Interval:   job.Interval,
			ErrorCount: job.errorCount,
		}
		if job.lastError != nil {
			status.LastError = job.lastError.Error()
		}
		job.mu.RUnlock()

		if job.handle != nil {
			status.LastRun = job.handle.LastRun()
			status.NextRun = job.handle.NextRun()
			status.RunCount = job.handle.RunCount()
		}
		statuses[i] = status
	}

	return statuses
}

// Trigger runs the named job now, outside its schedule.
func (s *Scheduler) Trigger(name string) error {
	if err := s.cron.RunByTag(name); err != nil {
		return fmt.Errorf("failed to trigger %s: %w", name, err)
	}
	return nil
}
