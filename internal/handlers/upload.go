package handlers

import (
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"zhscribe/internal/catalog"
	"zhscribe/internal/config"
	"zhscribe/internal/models"
	"zhscribe/internal/storage"
)

// allowedMIMETypes are the video container types accepted at upload.
var allowedMIMETypes = map[string]struct{}{
	"video/mp4":        {},
	"video/avi":        {},
	"video/quicktime":  {},
	"video/x-msvideo":  {},
	"video/x-matroska": {},
}

// UploadHandler accepts video uploads and creates pending jobs.
type UploadHandler struct {
	jobs *storage.JobStore
	cfg  *config.Config
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(jobs *storage.JobStore, cfg *config.Config) *UploadHandler {
	return &UploadHandler{jobs: jobs, cfg: cfg}
}

// Upload creates a job from a multipart video upload.
// POST /api/upload
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no file uploaded"})
	}

	mime := fh.Header.Get("Content-Type")
	if _, ok := allowedMIMETypes[mime]; !ok {
		return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": "unsupported video type: " + mime})
	}
	if fh.Size > h.cfg.MaxUploadBytes() {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "file exceeds upload limit"})
	}

	var settings *models.ChineseSettings
	if raw := c.FormValue("settings"); raw != "" {
		settings = &models.ChineseSettings{}
		if err := json.Unmarshal([]byte(raw), settings); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid settings JSON"})
		}
	}

	model := c.FormValue("model")
	if model == "" {
		model = catalog.DefaultModel
	}
	language := c.FormValue("language")
	if language == "" {
		language = "zh"
	}

	outputFormats := []string{models.FormatSRT, models.FormatVTT, models.FormatTXT}
	if raw := c.FormValue("outputFormats"); raw != "" {
		outputFormats = nil
		for _, f := range strings.Split(raw, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			if !models.ValidOutputFormat(f) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported output format: " + f})
			}
			outputFormats = append(outputFormats, f)
		}
	}

	storedPath := filepath.Join(h.cfg.UploadDir, uuid.New().String()+filepath.Ext(fh.Filename))
	size, err := h.saveUpload(fh, storedPath)
	if err != nil {
		log.Printf("Upload save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store upload"})
	}

	job := h.jobs.Create(models.Job{
		Filename:        fh.Filename,
		StoredPath:      storedPath,
		Language:        language,
		Model:           model,
		Settings:        settings,
		OutputFormats:   outputFormats,
		TensorRTEnabled: formBool(c, "tensorrtEnabled", true),
		GPUOptimization: formBool(c, "gpuOptimization", true),
		FileSize:        &size,
	})

	// No real decoding ever reads the file; drop it once the metadata
	// is captured.
	if err := os.Remove(storedPath); err != nil {
		log.Printf("Could not remove upload %s: %v", storedPath, err)
	}

	log.Printf("Job %d created for %s (model %s)", job.ID, job.Filename, job.Model)
	return c.JSON(http.StatusCreated, job)
}

func (h *UploadHandler) saveUpload(fh *multipart.FileHeader, dst string) (int64, error) {
	src, err := fh.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	return io.Copy(out, src)
}

func formBool(c echo.Context, name string, fallback bool) bool {
	switch strings.ToLower(c.FormValue(name)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return fallback
	}
}
