package simulate

import (
	"testing"
	"time"

	"zhscribe/internal/models"
	"zhscribe/internal/storage"
)

func newTestSimulator(t *testing.T) (*storage.JobStore, *Simulator) {
	t.Helper()
	jobs := storage.NewJobStore()
	sim := NewSimulator(jobs, 2*time.Millisecond)
	t.Cleanup(sim.Shutdown)
	return jobs, sim
}

// waitForStatus polls until the job reaches status or the deadline
// passes.
func waitForStatus(t *testing.T, jobs *storage.JobStore, id int64, status string) *models.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := jobs.Get(id)
		if !ok {
			t.Fatalf("job %d disappeared", id)
		}
		if job.Status == status {
			return job
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("job %d never reached status %q", id, status)
	return nil
}

// TestSimulatorRunsToCompletion verifies the full lifecycle: processing
// status, the fixed mock result, and terminal fields.
func TestSimulatorRunsToCompletion(t *testing.T) {
	jobs, sim := newTestSimulator(t)
	job := jobs.Create(models.Job{Filename: "drama.mp4", Model: "whisper-large-v3", TensorRTEnabled: true})

	sim.Start(job.ID)

	done := waitForStatus(t, jobs, job.ID, models.JobStatusCompleted)
	if done.Progress != 100 {
		t.Fatalf("progress = %d, want 100", done.Progress)
	}
	if done.Results == nil {
		t.Fatal("completed job should carry results")
	}
	if len(done.Results.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(done.Results.Segments))
	}
	if done.Results.Segments[0].Text != "欢迎观看今天的节目，我是主持人张明。" {
		t.Fatalf("unexpected first segment: %q", done.Results.Segments[0].Text)
	}
	if done.Results.FullText == "" {
		t.Fatal("fullText should be set")
	}
	if done.Results.Stats.ModelUsed != "whisper-large-v3" {
		t.Fatalf("modelUsed = %q", done.Results.Stats.ModelUsed)
	}
	if done.ProcessingTime == nil || *done.ProcessingTime < 60 || *done.ProcessingTime > 180 {
		t.Fatalf("processingTime = %v, want 60..180", done.ProcessingTime)
	}
	if done.CompletedAt == nil {
		t.Fatal("completedAt should be set on completion")
	}
	if done.CompletedAt.Before(done.CreatedAt) {
		t.Fatal("completedAt before createdAt")
	}
	if sim.ActiveCount() != 0 {
		t.Fatalf("active tickers = %d after completion, want 0", sim.ActiveCount())
	}
}

// TestSimulatorStartIsIdempotent verifies a duplicate Start registers no
// second ticker.
func TestSimulatorStartIsIdempotent(t *testing.T) {
	jobs, sim := newTestSimulator(t)
	job := jobs.Create(models.Job{Filename: "drama.mp4"})

	sim.Start(job.ID)
	sim.Start(job.ID)

	if sim.ActiveCount() != 1 {
		t.Fatalf("active tickers = %d, want 1", sim.ActiveCount())
	}
}

// TestSimulatorStopHaltsProgress verifies no further mutation lands
// after Stop, even well past several tick intervals.
func TestSimulatorStopHaltsProgress(t *testing.T) {
	jobs, sim := newTestSimulator(t)
	job := jobs.Create(models.Job{Filename: "drama.mp4"})

	sim.Start(job.ID)
	waitForStatus(t, jobs, job.ID, models.JobStatusProcessing)
	sim.Stop(job.ID)
	sim.Shutdown() // wait out any in-flight tick

	before, _ := jobs.Get(job.ID)
	time.Sleep(20 * time.Millisecond)
	after, _ := jobs.Get(job.ID)

	if after.Progress != before.Progress || after.Status != before.Status {
		t.Fatalf("job mutated after stop: %+v -> %+v", before, after)
	}
	if sim.ActiveCount() != 0 {
		t.Fatalf("active tickers = %d, want 0", sim.ActiveCount())
	}
}

// TestSimulatorStopUnknownJob verifies Stop is a no-op for ids that were
// never started.
func TestSimulatorStopUnknownJob(t *testing.T) {
	_, sim := newTestSimulator(t)
	sim.Stop(12345)
	if sim.ActiveCount() != 0 {
		t.Fatalf("active tickers = %d, want 0", sim.ActiveCount())
	}
}

// TestSimulatorProgressNonDecreasing samples progress while running and
// checks it never moves backwards.
func TestSimulatorProgressNonDecreasing(t *testing.T) {
	jobs, sim := newTestSimulator(t)
	job := jobs.Create(models.Job{Filename: "drama.mp4"})

	sim.Start(job.ID)

	last := 0
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		current, ok := jobs.Get(job.ID)
		if !ok {
			t.Fatal("job disappeared")
		}
		if current.Progress < last {
			t.Fatalf("progress went backwards: %d -> %d", last, current.Progress)
		}
		last = current.Progress
		if current.Status == models.JobStatusCompleted {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("job never completed")
}
