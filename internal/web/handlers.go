package web

import (
	"github.com/labstack/echo/v4"

	"evalgo.org/webapp/internal/config"
	"evalgo.org/webapp/internal/sysinfo"
	"evalgo.org/webapp/models"
)

// Handler handles web UI requests.
type Handler struct {
	collector *sysinfo.Collector
	config    *config.Config
}

// NewHandler creates a new web handler.
func NewHandler(collector *sysinfo.Collector, cfg *config.Config) *Handler {
	return &Handler{
		collector: collector,
		config:    cfg,
	}
}

// Home renders the landing page with the instance details.
func (h *Handler) Home(c echo.Context) error {
	snap := h.collector.Snapshot(c.Request().Context())

	return Render(c, Home(PageData{
		Info:             snap.InstanceInfo(h.config.App),
		FrameworkVersion: echo.Version,
		Uptime:           "Running",
		Updated:          models.FormatDisplayTime(snap.Time),
	}))
}
