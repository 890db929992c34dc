// Package catalog lists the transcription models this demo advertises
// and the GPU descriptor it claims to run on.
package catalog

import "zhscribe/internal/models"

// DefaultModel is used when an upload names no model.
const DefaultModel = "whisper-large-v3"

var modelCatalog = []models.ModelConfig{
	{
		Name:               "whisper-large-v3",
		DisplayName:        "Whisper Large V3 (推荐)",
		Type:               "whisper",
		SupportedLanguages: []string{"zh", "en", "ja", "ko"},
		GPUMemoryRequired:  4096,
		TensorRTSupport:    true,
		Description:        "最新的Whisper大模型，中文识别准确率最高",
	},
	{
		Name:               "whisper-medium",
		DisplayName:        "Whisper Medium (平衡)",
		Type:               "whisper",
		SupportedLanguages: []string{"zh", "en", "ja", "ko"},
		GPUMemoryRequired:  2048,
		TensorRTSupport:    true,
		Description:        "中等大小模型，速度与准确率平衡",
	},
	{
		Name:               "whisper-small",
		DisplayName:        "Whisper Small (快速)",
		Type:               "whisper",
		SupportedLanguages: []string{"zh", "en", "ja", "ko"},
		GPUMemoryRequired:  1024,
		TensorRTSupport:    true,
		Description:        "小模型，处理速度快但准确率稍低",
	},
	{
		Name:               "fireredasr-aed",
		DisplayName:        "FiredASR AED (专业中文)",
		Type:               "fireredasr",
		SupportedLanguages: []string{"zh"},
		GPUMemoryRequired:  3072,
		TensorRTSupport:    false,
		Description:        "专门针对中文优化的ASR模型，支持方言识别",
	},
}

// Models returns the advertised model list.
func Models() []models.ModelConfig {
	out := make([]models.ModelConfig, len(modelCatalog))
	copy(out, modelCatalog)
	return out
}

// GPU returns the static GPU descriptor.
func GPU() models.GPUInfo {
	return models.GPUInfo{
		Name:              "NVIDIA GeForce RTX 3060 Ti",
		MemoryTotal:       8192,
		MemoryAvailable:   6144,
		CUDAVersion:       "12.1",
		TensorRTSupported: true,
	}
}
