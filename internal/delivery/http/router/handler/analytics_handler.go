package handler

import (
	"net/http"

	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AnalyticsHandler handles the analyst's read-only impact views.
type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUsecase usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: params.AnalyticsUsecase,
	}
}

// GetOverview returns the headline impact summary.
func (h *AnalyticsHandler) GetOverview(c echo.Context) error {
	overview, err := h.analyticsUsecase.GetOverview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "")
}

// GetImpactMetrics returns meals, food weight, and derived water savings.
func (h *AnalyticsHandler) GetImpactMetrics(c echo.Context) error {
	metrics, err := h.analyticsUsecase.GetImpactMetrics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, metrics, "")
}

// GetCategoryBreakdown returns listing counts grouped by category.
func (h *AnalyticsHandler) GetCategoryBreakdown(c echo.Context) error {
	breakdown, err := h.analyticsUsecase.GetCategoryBreakdown(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, breakdown, "")
}

// GetMonthlyTrends returns listing activity bucketed by month.
func (h *AnalyticsHandler) GetMonthlyTrends(c echo.Context) error {
	trends, err := h.analyticsUsecase.GetMonthlyTrends(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trends, "")
}
