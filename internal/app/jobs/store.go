// Package jobs keeps the in-memory records of pipeline runs started
// over the API. Nothing here is persisted; results live only for the
// session and expire after a TTL.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "vidsum/internal/app/errors"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// ErrJobNotFound is returned for unknown or expired job IDs.
var ErrJobNotFound = apperrors.New("job not found")

// Job is one pipeline run tracked in memory.
type Job struct {
	ID          string
	FileName    string
	Status      Status
	Transcript  string
	Summary     string
	ErrorStage  string
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// Store is a concurrency-safe in-memory job registry.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	now  func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		jobs: make(map[string]*Job),
		now:  time.Now,
	}
}

// Create registers a new pending job for an uploaded file and returns
// a copy of it.
func (s *Store) Create(fileName string) Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	job := &Job{
		ID:        uuid.New().String(),
		FileName:  fileName,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.jobs[job.ID] = job
	return *job
}

// Get returns a copy of the job with the given ID.
func (s *Store) Get(id string) (Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return *job, nil
}

// MarkProcessing transitions a job to the processing state.
func (s *Store) MarkProcessing(id string) error {
	return s.update(id, func(job *Job) {
		job.Status = StatusProcessing
	})
}

// Complete records a successful run's transcript and summary.
func (s *Store) Complete(id, transcript, summary string) error {
	return s.update(id, func(job *Job) {
		now := s.now()
		job.Status = StatusCompleted
		job.Transcript = transcript
		job.Summary = summary
		job.CompletedAt = &now
	})
}

// Fail records a failed run with the stage it failed at.
func (s *Store) Fail(id, stage, message string) error {
	return s.update(id, func(job *Job) {
		now := s.now()
		job.Status = StatusFailed
		job.ErrorStage = stage
		job.Error = message
		job.CompletedAt = &now
	})
}

// Delete removes a job from the store.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

// Len returns the number of jobs currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// SweepExpired drops finished jobs older than ttl and returns how many
// were removed. Running jobs are never swept.
func (s *Store) SweepExpired(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, job := range s.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}

// StartSweeper periodically sweeps expired jobs until ctx is done.
func (s *Store) StartSweeper(ctx context.Context, interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.SweepExpired(ttl)
			}
		}
	}()
}

func (s *Store) update(id string, fn func(*Job)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	fn(job)
	job.UpdatedAt = s.now()
	return nil
}
