package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moitfe/portal-api/internal/core/service"
)

// StatsHandler serves the dashboard aggregation.
type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Summary handles GET /v1/stats/summary. The optional office query parameter
// scopes all totals to one submitting office.
func (h *StatsHandler) Summary(c echo.Context) error {
	office := c.QueryParam("office")
	return c.JSON(http.StatusOK, h.stats.Summarize(office))
}
