package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/webapp/models"
)

// getStatus handles GET /api/status
// @Summary Operational status
// @Description Reports the service as operational with its named checks.
// @Tags Status
// @Produce json
// @Success 200 {object} models.Status "Operational status"
// @Router /api/status [get]
func (s *Server) getStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, models.NewStatus(s.collector.Now()))
}
