package handler

import (
	"net/http"

	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecipientHandler handles browsing, reservation, and request endpoints.
type RecipientHandler struct {
	recipientUsecase usecase.RecipientUsecase
}

// RecipientHandlerParams holds dependencies for RecipientHandler, injected by Fx.
type RecipientHandlerParams struct {
	fx.In

	RecipientUsecase usecase.RecipientUsecase
}

// NewRecipientHandler is the constructor for RecipientHandler.
func NewRecipientHandler(params RecipientHandlerParams) *RecipientHandler {
	return &RecipientHandler{
		recipientUsecase: params.RecipientUsecase,
	}
}

type reserveListingRequest struct {
	RequestID *uuid.UUID `json:"request_id"`
}

type createRequestRequest struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	Category       string     `json:"category" validate:"required"`
	QuantityNeeded string     `json:"quantity_needed" validate:"required"`
	Urgency        string     `json:"urgency" validate:"omitempty,oneof=low medium high critical"`
	ListingID      *uuid.UUID `json:"listing_id"`
}

// GetDashboard returns available listings and the recipient's own requests.
func (h *RecipientHandler) GetDashboard(c echo.Context) error {
	recipientID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	dashboard, err := h.recipientUsecase.GetDashboard(c.Request().Context(), recipientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// BrowseListings returns every available listing, newest first.
func (h *RecipientHandler) BrowseListings(c echo.Context) error {
	listings, err := h.recipientUsecase.BrowseListings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// ReserveListing claims an available listing for the caller.
func (h *RecipientHandler) ReserveListing(c echo.Context) error {
	recipientID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LISTING_ID", "Listing ID must be a valid UUID")
	}

	// The body is optional; reserving without a linked request is the
	// common path.
	var req reserveListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	donation, err := h.recipientUsecase.ReserveListing(c.Request().Context(), recipientID, listingID, req.RequestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, donation, "Listing reserved")
}

// CreateRequest posts a new donation request.
func (h *RecipientHandler) CreateRequest(c echo.Context) error {
	recipientID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.recipientUsecase.CreateRequest(c.Request().Context(), recipientID, usecase.CreateRequestInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		QuantityNeeded: req.QuantityNeeded,
		Urgency:        entity.Urgency(req.Urgency),
		ListingID:      req.ListingID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Request created")
}

// FulfillRequest marks an own open request fulfilled.
func (h *RecipientHandler) FulfillRequest(c echo.Context) error {
	recipientID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_REQUEST_ID", "Request ID must be a valid UUID")
	}

	if err := h.recipientUsecase.FulfillRequest(c.Request().Context(), recipientID, requestID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request fulfilled")
}

// CancelRequest withdraws an own open request.
func (h *RecipientHandler) CancelRequest(c echo.Context) error {
	recipientID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_REQUEST_ID", "Request ID must be a valid UUID")
	}

	if err := h.recipientUsecase.CancelRequest(c.Request().Context(), recipientID, requestID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request cancelled")
}

// GetPickupQR renders the pickup QR code as a PNG image.
func (h *RecipientHandler) GetPickupQR(c echo.Context) error {
	recipientID, ok := middleware.GetProfileID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DONATION_ID", "Donation ID must be a valid UUID")
	}

	png, err := h.recipientUsecase.GetPickupQR(c.Request().Context(), recipientID, donationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
