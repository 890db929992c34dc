package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/host"

	"zhscribe/internal/catalog"
)

// ModelHandler serves the model catalog.
type ModelHandler struct{}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler() *ModelHandler {
	return &ModelHandler{}
}

// Models lists available model configs with the static GPU descriptor
// and live host information.
// GET /api/models
func (h *ModelHandler) Models(c echo.Context) error {
	payload := map[string]interface{}{
		"models":  catalog.Models(),
		"gpuInfo": catalog.GPU(),
	}

	if info, err := host.Info(); err == nil {
		payload["host"] = map[string]interface{}{
			"hostname":      info.Hostname,
			"platform":      info.Platform,
			"uptimeSeconds": info.Uptime,
		}
	}

	return c.JSON(http.StatusOK, payload)
}
