package storage

import (
	"sort"
	"sync"
	"time"

	"zhscribe/internal/models"
)

// JobStore is the authoritative in-memory collection of jobs. Nothing is
// persisted; a process restart loses all records.
type JobStore struct {
	mu     sync.RWMutex
	jobs   map[int64]*models.Job
	nextID int64
}

// NewJobStore creates an empty job store.
func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[int64]*models.Job),
	}
}

// Create assigns the next id and stores the job with pending status and
// zero progress. The stored record is returned as a copy.
func (s *JobStore) Create(job models.Job) *models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	job.ID = s.nextID
	job.Status = models.JobStatusPending
	job.Progress = 0
	job.CompletedAt = nil
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	stored := job
	s.jobs[job.ID] = &stored

	out := stored
	return &out
}

// Get returns a copy of the job, or (nil, false) when no such id exists.
func (s *JobStore) Get(id int64) (*models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, false
	}
	out := *job
	return &out, true
}

// Update merges the non-nil fields of update into the stored record.
// There is no version check; concurrent writers race on last-writer-wins.
func (s *JobStore) Update(id int64, update models.JobUpdate) (*models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, false
	}

	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.Progress != nil {
		job.Progress = *update.Progress
	}
	if update.Results != nil {
		job.Results = update.Results
	}
	if update.GPUUtilization != nil {
		job.GPUUtilization = update.GPUUtilization
	}
	if update.ProcessingTime != nil {
		job.ProcessingTime = update.ProcessingTime
	}
	if update.CompletedAt != nil {
		job.CompletedAt = update.CompletedAt
	}

	out := *job
	return &out, true
}

// List returns copies of all jobs, newest first. A non-empty status
// filters by exact match.
func (s *JobStore) List(status string) []*models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if status != "" && job.Status != status {
			continue
		}
		copied := *job
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	return out
}

// CountByStatus returns the number of jobs with the given status.
func (s *JobStore) CountByStatus(status string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, job := range s.jobs {
		if job.Status == status {
			n++
		}
	}
	return n
}

// Len returns the total number of stored jobs.
func (s *JobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// Delete removes the job and reports whether it existed. The caller must
// also stop any running simulator for this id; the store knows nothing
// about timers.
func (s *JobStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return false
	}
	delete(s.jobs, id)
	return true
}
