package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all server settings in correct types.
type Config struct {
	Port              string
	UploadDir         string
	MaxUploadMB       int64
	SimulateInterval  time.Duration
	MetricsInterval   time.Duration
	MetricsHistoryCap int
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:       int64(getEnvAsInt("MAX_UPLOAD_MB", 10240)),
		SimulateInterval:  time.Duration(getEnvAsInt("SIMULATE_INTERVAL_MS", 2000)) * time.Millisecond,
		MetricsInterval:   time.Duration(getEnvAsInt("METRICS_INTERVAL_MS", 3000)) * time.Millisecond,
		MetricsHistoryCap: getEnvAsInt("METRICS_HISTORY_CAP", 1000),
	}

	validate(cfg)
	return cfg
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// BodyLimit returns the upload cap in echo middleware notation.
func (c *Config) BodyLimit() string {
	return fmt.Sprintf("%dM", c.MaxUploadMB)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	str := getEnv(key, "")
	if val, err := strconv.Atoi(str); err == nil {
		return val
	}
	return fallback
}

func validate(cfg *Config) {
	if cfg.MaxUploadMB < 1 {
		log.Println("Warning: MAX_UPLOAD_MB must be at least 1, resetting to 10240")
		cfg.MaxUploadMB = 10240
	}
	if _, err := os.Stat(cfg.UploadDir); os.IsNotExist(err) {
		log.Printf("Creating missing upload directory: %s", cfg.UploadDir)
		os.MkdirAll(cfg.UploadDir, 0755)
	}
}
