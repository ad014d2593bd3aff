package handler

import (
	"net/http"
	"time"

	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DonorHandler handles listing management and donation hand-over endpoints.
type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
}

// DonorHandlerParams holds dependencies for DonorHandler, injected by Fx.
type DonorHandlerParams struct {
	fx.In

	DonorUsecase usecase.DonorUsecase
}

// NewDonorHandler is the constructor for DonorHandler.
func NewDonorHandler(params DonorHandlerParams) *DonorHandler {
	return &DonorHandler{
		donorUsecase: params.DonorUsecase,
	}
}

type listingRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description"`
	Category           string     `json:"category" validate:"required"`
	Quantity           string     `json:"quantity" validate:"required"`
	ExpiryDate         *time.Time `json:"expiry_date"`
	PickupLocation     string     `json:"pickup_location" validate:"required"`
	PickupInstructions string     `json:"pickup_instructions"`
}

type confirmPickupRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

type confirmDeliveryRequest struct {
	ImpactNotes string `json:"impact_notes"`
}

type imageUploadResponse struct {
	ImageURL string `json:"image_url"`
}

func donorIdentity(c echo.Context) (uuid.UUID, bool) {
	return middleware.GetProfileID(c)
}

func listingIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// GetDashboard returns the donor's listings with summary counts.
func (h *DonorHandler) GetDashboard(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	dashboard, err := h.donorUsecase.GetDashboard(c.Request().Context(), donorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// CreateListing publishes a new food listing.
func (h *DonorHandler) CreateListing(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.donorUsecase.CreateListing(c.Request().Context(), donorID, usecase.CreateListingInput{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Quantity:           req.Quantity,
		ExpiryDate:         req.ExpiryDate,
		PickupLocation:     req.PickupLocation,
		PickupInstructions: req.PickupInstructions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created")
}

// UpdateListing modifies an owned listing's descriptive fields.
func (h *DonorHandler) UpdateListing(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	listingID, err := listingIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LISTING_ID", "Listing ID must be a valid UUID")
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.donorUsecase.UpdateListing(c.Request().Context(), donorID, listingID, usecase.UpdateListingInput{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Quantity:           req.Quantity,
		ExpiryDate:         req.ExpiryDate,
		PickupLocation:     req.PickupLocation,
		PickupInstructions: req.PickupInstructions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated")
}

// CompleteListing marks an available listing completed.
func (h *DonorHandler) CompleteListing(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	listingID, err := listingIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LISTING_ID", "Listing ID must be a valid UUID")
	}

	if err := h.donorUsecase.CompleteListing(c.Request().Context(), donorID, listingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing completed")
}

// CancelListing withdraws an available listing.
func (h *DonorHandler) CancelListing(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	listingID, err := listingIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LISTING_ID", "Listing ID must be a valid UUID")
	}

	if err := h.donorUsecase.CancelListing(c.Request().Context(), donorID, listingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing cancelled")
}

// UploadImage stores a photo for an owned listing. Expects a multipart form
// with an "image" file field.
func (h *DonorHandler) UploadImage(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	listingID, err := listingIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_LISTING_ID", "Listing ID must be a valid UUID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "MISSING_IMAGE", "Multipart field 'image' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)

	imageURL, err := h.donorUsecase.UploadListingImage(c.Request().Context(), donorID, listingID, contentType, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &imageUploadResponse{ImageURL: imageURL}, "Image uploaded")
}

// ConfirmPickup resolves a scanned pickup QR code and moves the donation
// into transit.
func (h *DonorHandler) ConfirmPickup(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req confirmPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	donation, err := h.donorUsecase.ConfirmPickup(c.Request().Context(), donorID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donation, "Pickup confirmed")
}

// ConfirmDelivery marks a donation delivered and completes its listing.
func (h *DonorHandler) ConfirmDelivery(c echo.Context) error {
	donorID, ok := donorIdentity(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DONATION_ID", "Donation ID must be a valid UUID")
	}

	var req confirmDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	donation, err := h.donorUsecase.ConfirmDelivery(c.Request().Context(), donorID, donationID, req.ImpactNotes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donation, "Delivery confirmed")
}
