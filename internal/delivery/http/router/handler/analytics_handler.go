package handler

import (
	"net/http"
	"strconv"

	"menudash/internal/delivery/http/response"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler serves the dashboard statistics.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: params.AnalyticsUC}
}

// GetAnalytics handles GET /analytics?period=N.
func (h *AnalyticsHandler) GetAnalytics(c echo.Context) error {
	period := usecase.DefaultAnalyticsPeriodDays
	if raw := c.QueryParam("period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "period must be a number of days")
		}
		period = parsed
	}

	snapshot, err := h.analyticsUC.GetAnalytics(c.Request().Context(), period)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}
