package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workpulse/workpulse-api/internal/core/ports"
	"github.com/workpulse/workpulse-api/internal/core/stats"
)

// StatsHandler serves the dashboard aggregates computed over the caller's
// visible activity subset. The SPA polls this endpoint on a fixed interval.
type StatsHandler struct {
	service ports.ActivityService
}

func NewStatsHandler(service ports.ActivityService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles GET /api/activity/stats.
//
// @Summary      Dashboard aggregates over the caller's visible snapshots
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  query     string  false  "Admin-only equality filter"
// @Success      200         {object}  statsResponse
// @Failure      401         {object}  errorResponse
// @Router       /api/activity/stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	activities, err := h.service.List(c.Request().Context(), ident, c.QueryParam("employeeId"))
	if err != nil {
		return err
	}

	hourly := stats.HourlyHistogram(activities)
	return c.JSON(http.StatusOK, statsResponse{
		StatusCounts: stats.LatestStatusByEmployee(activities),
		Hourly:       hourly,
		Intensity:    stats.HeatmapIntensity(hourly),
		Series:       stats.TimeSeriesByMinute(activities),
		Today:        stats.DailyBreakdown(activities, time.Now()),
	})
}
