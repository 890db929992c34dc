package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"zhscribe/internal/models"
	"zhscribe/internal/simulate"
	"zhscribe/internal/storage"
	"zhscribe/internal/subtitle"
)

// JobHandler serves the job API.
type JobHandler struct {
	jobs *storage.JobStore
	sim  *simulate.Simulator
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs *storage.JobStore, sim *simulate.Simulator) *JobHandler {
	return &JobHandler{jobs: jobs, sim: sim}
}

// List returns all jobs, newest first, optionally filtered by status.
// GET /api/jobs?status=
func (h *JobHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	return c.JSON(http.StatusOK, h.jobs.List(status))
}

// Get returns one job.
// GET /api/jobs/:id
func (h *JobHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid job id"})
	}

	job, ok := h.jobs.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job not found"})
	}
	return c.JSON(http.StatusOK, job)
}

// Update applies a partial update to a job.
// PATCH /api/jobs/:id
func (h *JobHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid job id"})
	}

	var update models.JobUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid update payload"})
	}
	if update.Status != nil && !models.ValidStatus(*update.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status: " + *update.Status})
	}
	if update.Progress != nil && (*update.Progress < 0 || *update.Progress > 100) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "progress must be between 0 and 100"})
	}

	job, ok := h.jobs.Update(id, update)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job not found"})
	}
	return c.JSON(http.StatusOK, job)
}

// Delete removes a job and stops its simulation ticker.
// DELETE /api/jobs/:id
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid job id"})
	}

	// Stop before delete so no tick can land on a removed (or later
	// recreated) record.
	h.sim.Stop(id)

	if !h.jobs.Delete(id) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "job deleted"})
}

// Start begins simulated processing for a pending job.
// POST /api/jobs/:id/start
func (h *JobHandler) Start(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid job id"})
	}

	job, ok := h.jobs.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job not found"})
	}
	if job.Status != models.JobStatusPending {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "job is not pending: " + job.Status})
	}

	h.sim.Start(id)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"jobId":   id,
		"message": "transcription started",
	})
}

// Download generates subtitle or text output for a completed job.
// GET /api/jobs/:id/download/:format
func (h *JobHandler) Download(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid job id"})
	}

	format := c.Param("format")
	if !models.ValidOutputFormat(format) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported format: " + format})
	}

	job, ok := h.jobs.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job not found"})
	}
	if job.Status != models.JobStatusCompleted || job.Results == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "job has no results yet"})
	}

	var body, contentType string
	switch format {
	case models.FormatSRT:
		body = subtitle.ToSRT(job.Results.Segments)
		contentType = "application/x-subrip; charset=utf-8"
	case models.FormatVTT:
		body = subtitle.ToVTT(job.Results.Segments)
		contentType = "text/vtt; charset=utf-8"
	case models.FormatTXT:
		body = subtitle.ToPlainText(job.Results.Segments, job.Results.FullText)
		contentType = "text/plain; charset=utf-8"
	}

	base := strings.TrimSuffix(job.Filename, filepath.Ext(job.Filename))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.%s"`, base, format))
	return c.Blob(http.StatusOK, contentType, []byte(body))
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
