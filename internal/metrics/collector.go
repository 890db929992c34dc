// Package metrics produces periodic system metrics snapshots. GPU
// readings are synthesized in the same ranges the demo UI expects; CPU
// and memory come from the real host via gopsutil.
package metrics

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"zhscribe/internal/models"
	"zhscribe/internal/storage"
)

// Collector appends one snapshot per interval so metrics exist even with
// zero active jobs.
type Collector struct {
	jobs     *storage.JobStore
	metrics  *storage.MetricsStore
	interval time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewCollector creates a collector writing into metrics every interval.
func NewCollector(jobs *storage.JobStore, metrics *storage.MetricsStore, interval time.Duration) *Collector {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Collector{
		jobs:     jobs,
		metrics:  metrics,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Interval returns the collection period.
func (c *Collector) Interval() time.Duration {
	return c.interval
}

// Start begins periodic collection.
func (c *Collector) Start() {
	c.wg.Add(1)
	go c.run()
	log.Println("Metrics collector started")
}

// Stop halts collection and waits for the goroutine.
func (c *Collector) Stop() {
	close(c.stop)
	c.wg.Wait()
	log.Println("Metrics collector stopped")
}

func (c *Collector) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.metrics.Add(c.Snapshot())
		}
	}
}

// Snapshot builds one reading without storing it.
func (c *Collector) Snapshot() models.SystemMetricsSnapshot {
	snapshot := models.SystemMetricsSnapshot{
		GPUUtilization: 60 + rand.Intn(41),
		VRAMUsage:      4000 + rand.Intn(2001),
		Temperature:    65 + rand.Intn(16),
		ActiveJobs:     c.jobs.CountByStatus(models.JobStatusProcessing),
		TensorRTStatus: true,
		Timestamp:      time.Now(),
	}

	if v, err := mem.VirtualMemory(); err == nil {
		snapshot.MemoryUsedMB = int(v.Used / (1024 * 1024))
	}
	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		snapshot.CPUPercent = percentages[0]
	}

	return snapshot
}
