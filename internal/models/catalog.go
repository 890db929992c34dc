package models

// ModelConfig describes one transcription model available to clients.
type ModelConfig struct {
	Name               string   `json:"name"`
	DisplayName        string   `json:"displayName"`
	Type               string   `json:"type"` // whisper, fireredasr
	SupportedLanguages []string `json:"supportedLanguages"`
	GPUMemoryRequired  int      `json:"gpuMemoryRequired"` // MB
	TensorRTSupport    bool     `json:"tensorrtSupport"`
	Description        string   `json:"description"`
}

// GPUInfo is the static descriptor of the GPU this demo claims to run on.
type GPUInfo struct {
	Name              string `json:"name"`
	MemoryTotal       int    `json:"memoryTotal"`     // MB
	MemoryAvailable   int    `json:"memoryAvailable"` // MB
	CUDAVersion       string `json:"cudaVersion"`
	TensorRTSupported bool   `json:"tensorrtSupported"`
}
