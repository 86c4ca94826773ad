package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// getInstanceInfo handles GET /api/info
// @Summary Instance information
// @Description Hostname, address, platform and deployment descriptors of the serving instance.
// @Description Hostname and ip_address are "Unknown" when the host cannot be resolved.
// @Tags Info
// @Produce json
// @Success 200 {object} models.InstanceInfo "Instance information"
// @Router /api/info [get]
func (s *Server) getInstanceInfo(c echo.Context) error {
	snap := s.collector.Snapshot(c.Request().Context())
	return c.JSON(http.StatusOK, snap.InstanceInfo(s.config.App))
}
