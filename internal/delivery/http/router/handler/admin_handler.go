package handler

import (
	"net/http"

	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandler handles the administrator's read-only views.
type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUsecase usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUsecase: params.AdminUsecase,
	}
}

// GetOverview returns marketplace-wide counters.
func (h *AdminHandler) GetOverview(c echo.Context) error {
	overview, err := h.adminUsecase.GetOverview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "")
}

// ListProfiles returns every profile, optionally filtered by ?role=.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	var role *entity.Role
	if raw := c.QueryParam("role"); raw != "" {
		parsed := entity.Role(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_ROLE", "Unknown profile role")
		}
		role = &parsed
	}

	profiles, err := h.adminUsecase.ListProfiles(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]*profileResponse, 0, len(profiles))
	for _, profile := range profiles {
		results = append(results, newProfileResponse(profile))
	}

	return response.Success(c, http.StatusOK, results, "")
}

// ListListings returns every listing, optionally filtered by ?status=.
func (h *AdminHandler) ListListings(c echo.Context) error {
	var status *entity.ListingStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.ListingStatus(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown listing status")
		}
		status = &parsed
	}

	listings, err := h.adminUsecase.ListListings(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}
