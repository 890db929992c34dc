package config

import (
	"path/filepath"
	"testing"
	"time"
)

// TestLoadDefaults verifies defaults when no environment is set.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("UPLOAD_DIR", filepath.Join(t.TempDir(), "uploads"))

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.SimulateInterval != 2*time.Second {
		t.Fatalf("simulateInterval = %v, want 2s", cfg.SimulateInterval)
	}
	if cfg.MetricsInterval != 3*time.Second {
		t.Fatalf("metricsInterval = %v, want 3s", cfg.MetricsInterval)
	}
	if cfg.MaxUploadBytes() != 10240<<20 {
		t.Fatalf("maxUploadBytes = %d", cfg.MaxUploadBytes())
	}
	if cfg.BodyLimit() != "10240M" {
		t.Fatalf("bodyLimit = %q", cfg.BodyLimit())
	}
}

// TestLoadOverrides verifies environment overrides and the floor on the
// upload cap.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("UPLOAD_DIR", filepath.Join(t.TempDir(), "uploads"))
	t.Setenv("PORT", "9000")
	t.Setenv("SIMULATE_INTERVAL_MS", "50")
	t.Setenv("MAX_UPLOAD_MB", "0")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("port = %q, want 9000", cfg.Port)
	}
	if cfg.SimulateInterval != 50*time.Millisecond {
		t.Fatalf("simulateInterval = %v, want 50ms", cfg.SimulateInterval)
	}
	if cfg.MaxUploadMB != 10240 {
		t.Fatalf("maxUploadMB = %d, want reset to 10240", cfg.MaxUploadMB)
	}
}
