// Package handler contains the HTTP handlers that translate requests into
// use case calls and use case results into API responses.
package handler

import (
	"net/http"
	"time"

	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandler handles registration, session, and profile endpoints.
type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUsecase usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUsecase: params.AccountUsecase,
	}
}

type registerRequest struct {
	FullName         string `json:"full_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	Role             string `json:"role" validate:"required,oneof=admin donor recipient analyst"`
	OrganizationName string `json:"organization_name"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type updateProfileRequest struct {
	FullName         string `json:"full_name" validate:"required"`
	OrganizationName string `json:"organization_name"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
}

// profileResponse is the API shape of a profile. The password hash never
// leaves the persistence layer, so there is nothing to redact here.
type profileResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Role             string    `json:"role"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newProfileResponse(profile *entity.Profile) *profileResponse {
	return &profileResponse{
		ID:               profile.ID,
		Email:            profile.Email,
		FullName:         profile.FullName,
		Role:             profile.Role.String(),
		OrganizationName: profile.OrganizationName,
		Phone:            profile.Phone,
		Address:          profile.Address,
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}
}

type loginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Profile      *profileResponse `json:"profile"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a new profile with a fixed role.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUsecase.Register(c.Request().Context(), usecase.RegisterInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Password:         req.Password,
		Role:             entity.Role(req.Role),
		OrganizationName: req.OrganizationName,
		Phone:            req.Phone,
		Address:          req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProfileResponse(output.Profile), "Registration successful")
}

// Login verifies credentials and issues a token pair.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Profile:      newProfileResponse(output.Profile),
	}, "Login successful")
}

// Refresh rotates the presented refresh token and issues a new pair.
func (h *AccountHandler) Refresh(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUsecase.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Token refreshed")
}

// Logout revokes the session identified by the refresh token.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.accountUsecase.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// GetProfile returns the authenticated caller's own profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	profile, err := h.accountUsecase.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile), "")
}

// UpdateProfile modifies the caller's editable profile fields. Email and
// role cannot be changed.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.accountUsecase.UpdateProfile(c.Request().Context(), profileID, usecase.UpdateProfileInput{
		FullName:         req.FullName,
		OrganizationName: req.OrganizationName,
		Phone:            req.Phone,
		Address:          req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile), "Profile updated")
}
