package analytics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultTopLimit = 10

// Handler serves analytics data over HTTP.
type Handler struct {
	tracker *Tracker
}

// NewHandler creates a Handler backed by tracker.
func NewHandler(tracker *Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// RegisterRoutes adds the stats endpoint to e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/_stats", h.Stats)
}

// Stats responds with aggregated page views as JSON. The optional "limit"
// query parameter bounds the number of pages listed.
func (h *Handler) Stats(c echo.Context) error {
	limit := defaultTopLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}
	stats, err := h.tracker.Stats(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
