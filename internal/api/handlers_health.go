package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/webapp/internal/version"
	"evalgo.org/webapp/models"
)

// healthCheck handles GET /health
// @Summary Liveness probe
// @Description Always reports healthy while the process is serving requests. Used by the load balancer.
// @Tags Health
// @Produce json
// @Success 200 {object} models.Health "Service is alive"
// @Router /health [get]
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &models.Health{
		Status:    models.StatusHealthy,
		Timestamp: models.FormatTimestamp(s.collector.Now()),
		Service:   version.ServiceName,
		Version:   version.ServiceVersion,
	})
}
