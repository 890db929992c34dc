package simulate

import "zhscribe/internal/models"

// mockSegments is the fixed transcription every simulated job produces.
var mockSegments = []models.TranscriptionSegment{
	{
		Start:      0.0,
		End:        5.2,
		Text:       "欢迎观看今天的节目，我是主持人张明。",
		Confidence: 0.95,
	},
	{
		Start:      5.2,
		End:        12.8,
		Text:       "今天我们要讨论的话题是人工智能在现代社会中的应用。",
		Confidence: 0.92,
	},
	{
		Start:      12.8,
		End:        20.5,
		Text:       "人工智能技术正在快速发展，它已经渗透到我们生活的各个方面。",
		Confidence: 0.89,
	},
}

// MockResult builds the canned transcription result for a finished job.
func MockResult(model string, tensorrt bool) *models.TranscriptionResult {
	segments := make([]models.TranscriptionSegment, len(mockSegments))
	copy(segments, mockSegments)

	fullText := ""
	for _, seg := range segments {
		fullText += seg.Text
	}

	return &models.TranscriptionResult{
		Segments: segments,
		FullText: fullText,
		Stats: models.ProcessingStats{
			ModelUsed:     model,
			SpeedupFactor: 8.5,
			Accuracy:      96.5,
			GPUUsed:       true,
			TensorRTUsed:  tensorrt,
		},
	}
}
