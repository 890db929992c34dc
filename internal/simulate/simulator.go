// Package simulate emulates an asynchronous GPU transcription pipeline:
// per-job tickers advance a synthetic progress counter and write a fixed
// mock result on completion. No real inference happens anywhere.
package simulate

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"zhscribe/internal/models"
	"zhscribe/internal/storage"
)

// Simulator drives progress for running jobs. Each job has at most one
// ticker goroutine; Start is idempotent and Stop must be called when a
// job is deleted, or the orphaned ticker keeps mutating the store.
type Simulator struct {
	jobs     *storage.JobStore
	interval time.Duration

	mu      sync.Mutex
	running map[int64]chan struct{}
	wg      sync.WaitGroup
}

// NewSimulator creates a simulator ticking every interval per job.
func NewSimulator(jobs *storage.JobStore, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Simulator{
		jobs:     jobs,
		interval: interval,
		running:  make(map[int64]chan struct{}),
	}
}

// Start marks the job as processing and begins its ticker. A second call
// for the same id is a no-op while the first ticker is registered.
func (s *Simulator) Start(jobID int64) {
	s.mu.Lock()
	if _, ok := s.running[jobID]; ok {
		s.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	s.running[jobID] = stop
	s.wg.Add(1)
	s.mu.Unlock()

	status := models.JobStatusProcessing
	s.jobs.Update(jobID, models.JobUpdate{Status: &status})

	go s.run(jobID, stop)
	log.Printf("Simulation started for job %d", jobID)
}

// Stop clears the job's ticker if one is registered. Safe to call for
// ids that were never started or already finished.
func (s *Simulator) Stop(jobID int64) {
	s.mu.Lock()
	stop, ok := s.running[jobID]
	if ok {
		delete(s.running, jobID)
		close(stop)
	}
	s.mu.Unlock()

	if ok {
		log.Printf("Simulation stopped for job %d", jobID)
	}
}

// ActiveCount returns the number of jobs with a registered ticker.
func (s *Simulator) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}

// Shutdown stops every running ticker and waits for the goroutines.
func (s *Simulator) Shutdown() {
	s.mu.Lock()
	for id, stop := range s.running {
		delete(s.running, id)
		close(stop)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Simulator) run(jobID int64, stop chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	progress := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			progress += 5 + rand.Intn(11)
			if progress >= 100 {
				s.complete(jobID)
				s.deregister(jobID, stop)
				return
			}
			gpu := 70 + rand.Intn(31)
			status := models.JobStatusProcessing
			s.jobs.Update(jobID, models.JobUpdate{
				Status:         &status,
				Progress:       &progress,
				GPUUtilization: &gpu,
			})
		}
	}
}

// complete writes the canned result and terminal fields into the job.
// The failed path never runs here, so completedAt is only ever set on
// completion.
func (s *Simulator) complete(jobID int64) {
	job, ok := s.jobs.Get(jobID)
	if !ok {
		return
	}

	status := models.JobStatusCompleted
	progress := 100
	processingTime := float64(60 + rand.Intn(121))
	now := time.Now()

	s.jobs.Update(jobID, models.JobUpdate{
		Status:         &status,
		Progress:       &progress,
		Results:        MockResult(job.Model, job.TensorRTEnabled),
		ProcessingTime: &processingTime,
		CompletedAt:    &now,
	})
	log.Printf("Job %d transcription completed", jobID)
}

// deregister removes the ticker entry unless Stop already replaced it.
func (s *Simulator) deregister(jobID int64, stop chan struct{}) {
	s.mu.Lock()
	if current, ok := s.running[jobID]; ok && current == stop {
		delete(s.running, jobID)
	}
	s.mu.Unlock()
}
