package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"zhscribe/internal/metrics"
	"zhscribe/internal/storage"
)

// SystemHandler serves system metrics endpoints.
type SystemHandler struct {
	metrics   *storage.MetricsStore
	collector *metrics.Collector
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(store *storage.MetricsStore, collector *metrics.Collector) *SystemHandler {
	return &SystemHandler{metrics: store, collector: collector}
}

// Metrics returns the latest snapshot, synthesizing a fresh one when the
// store is empty or the newest reading is stale.
// GET /api/system/metrics
func (h *SystemHandler) Metrics(c echo.Context) error {
	latest, ok := h.metrics.Latest()
	if !ok || time.Since(latest.Timestamp) > 2*h.collector.Interval() {
		latest = h.metrics.Add(h.collector.Snapshot())
	}
	return c.JSON(http.StatusOK, latest)
}

// MetricsHistory returns recent snapshots, newest first.
// GET /api/system/metrics/history?limit=
func (h *SystemHandler) MetricsHistory(c echo.Context) error {
	limit := 100
	if l := c.QueryParam("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		}
		limit = parsed
	}
	return c.JSON(http.StatusOK, h.metrics.History(limit))
}
