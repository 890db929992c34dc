package models

import "time"

// Job represents one uploaded media item queued for transcription.
type Job struct {
	ID              int64                `json:"id"`
	Filename        string               `json:"filename"`
	StoredPath      string               `json:"-"`
	Status          string               `json:"status"`
	Progress        int                  `json:"progress"`
	Duration        *float64             `json:"duration,omitempty"`
	FileSize        *int64               `json:"fileSize,omitempty"`
	Resolution      *string              `json:"resolution,omitempty"`
	Language        string               `json:"language"`
	Model           string               `json:"model"`
	Settings        *ChineseSettings     `json:"settings,omitempty"`
	OutputFormats   []string             `json:"outputFormats"`
	TensorRTEnabled bool                 `json:"tensorrtEnabled"`
	GPUOptimization bool                 `json:"gpuOptimization"`
	GPUUtilization  *int                 `json:"gpuUtilization,omitempty"`
	ProcessingTime  *float64             `json:"processingTime,omitempty"`
	Results         *TranscriptionResult `json:"results,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CompletedAt     *time.Time           `json:"completedAt,omitempty"`
}

// Job statuses
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// ValidStatus reports whether s is one of the four job statuses.
func ValidStatus(s string) bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	default:
		return false
	}
}

// Output formats
const (
	FormatSRT = "srt"
	FormatVTT = "vtt"
	FormatTXT = "txt"
)

// ValidOutputFormat reports whether f is a supported subtitle/text format.
func ValidOutputFormat(f string) bool {
	return f == FormatSRT || f == FormatVTT || f == FormatTXT
}

// ChineseSettings holds the Chinese text post-processing options attached
// to a job at upload time.
type ChineseSettings struct {
	Variant            string `json:"variant"`            // simplified, traditional, auto
	MultiPronunciation bool   `json:"multiPronunciation"` // handle 多音字 characters
	SmartPunctuation   bool   `json:"smartPunctuation"`
	SegmentationMethod string `json:"segmentationMethod"` // jieba, ai, basic
}

// JobUpdate is a partial update merged into a stored job. Nil fields are
// left untouched; the last writer wins.
type JobUpdate struct {
	Status         *string              `json:"status,omitempty"`
	Progress       *int                 `json:"progress,omitempty"`
	Results        *TranscriptionResult `json:"results,omitempty"`
	GPUUtilization *int                 `json:"gpuUtilization,omitempty"`
	ProcessingTime *float64             `json:"processingTime,omitempty"`
	CompletedAt    *time.Time           `json:"completedAt,omitempty"`
}
