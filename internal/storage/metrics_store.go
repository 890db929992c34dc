package storage

import (
	"sync"
	"time"

	"zhscribe/internal/models"
)

// MetricsStore keeps an append-only, bounded in-memory history of system
// metrics snapshots.
type MetricsStore struct {
	mu        sync.RWMutex
	nextID    int64
	maxEvents int
	snapshots []models.SystemMetricsSnapshot
}

// NewMetricsStore creates a store retaining at most maxEvents snapshots.
func NewMetricsStore(maxEvents int) *MetricsStore {
	if maxEvents <= 0 {
		maxEvents = 1000
	}
	return &MetricsStore{
		maxEvents: maxEvents,
		snapshots: make([]models.SystemMetricsSnapshot, 0, maxEvents),
	}
}

// Add appends one snapshot, assigning its id and timestamp.
func (s *MetricsStore) Add(snapshot models.SystemMetricsSnapshot) models.SystemMetricsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	snapshot.ID = s.nextID
	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now()
	}

	s.snapshots = append(s.snapshots, snapshot)
	if len(s.snapshots) > s.maxEvents {
		trim := len(s.snapshots) - s.maxEvents
		s.snapshots = append([]models.SystemMetricsSnapshot(nil), s.snapshots[trim:]...)
	}

	return snapshot
}

// Latest returns the most recent snapshot, or false when none exist.
func (s *MetricsStore) Latest() (models.SystemMetricsSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshots) == 0 {
		return models.SystemMetricsSnapshot{}, false
	}
	return s.snapshots[len(s.snapshots)-1], true
}

// History returns up to limit snapshots, newest first.
func (s *MetricsStore) History(limit int) []models.SystemMetricsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.snapshots) {
		limit = len(s.snapshots)
	}

	out := make([]models.SystemMetricsSnapshot, 0, limit)
	for i := len(s.snapshots) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.snapshots[i])
	}
	return out
}
