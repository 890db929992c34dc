package models

import "time"

// SystemMetricsSnapshot is a point-in-time system reading. GPU values are
// synthesized; CPU and host memory come from the actual process host.
type SystemMetricsSnapshot struct {
	ID             int64     `json:"id"`
	GPUUtilization int       `json:"gpuUtilization"` // percent
	VRAMUsage      int       `json:"vramUsage"`      // MB
	Temperature    int       `json:"temperature"`    // Celsius
	CPUPercent     float64   `json:"cpuPercent"`
	MemoryUsedMB   int       `json:"memoryUsedMB"`
	ActiveJobs     int       `json:"activeJobs"`
	TensorRTStatus bool      `json:"tensorrtStatus"`
	Timestamp      time.Time `json:"timestamp"`
}
