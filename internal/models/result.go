package models

// TranscriptionSegment is one timestamped span of recognized text.
type TranscriptionSegment struct {
	Start      float64 `json:"start"` // seconds
	End        float64 `json:"end"`   // seconds
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"` // 0..1
}

// ProcessingStats summarizes how a transcription run performed.
type ProcessingStats struct {
	ModelUsed     string  `json:"modelUsed"`
	SpeedupFactor float64 `json:"speedupFactor"` // realtime multiple
	Accuracy      float64 `json:"accuracy"`      // percent
	GPUUsed       bool    `json:"gpuUsed"`
	TensorRTUsed  bool    `json:"tensorrtUsed"`
}

// TranscriptionResult is the complete output attached to a completed job.
type TranscriptionResult struct {
	Segments []TranscriptionSegment `json:"segments"`
	FullText string                 `json:"fullText"`
	Stats    ProcessingStats        `json:"stats"`
}
