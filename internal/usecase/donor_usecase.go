package usecase

import (
	"context"
	"io"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListingInput defines the data required to publish a food listing.
type CreateListingInput struct {
	Title              string
	Description        string
	Category           string
	Quantity           string
	ExpiryDate         *time.Time
	PickupLocation     string
	PickupInstructions string
}

// UpdateListingInput defines the editable fields of an existing listing.
// Status changes go through the dedicated transition operations.
type UpdateListingInput struct {
	Title              string
	Description        string
	Category           string
	Quantity           string
	ExpiryDate         *time.Time
	PickupLocation     string
	PickupInstructions string
}

// DonorStats summarises a donor's listings for the dashboard.
type DonorStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Completed int `json:"completed"`
}

// DonorDashboardOutput bundles a donor's listings with their stats.
type DonorDashboardOutput struct {
	Stats    DonorStats            `json:"stats"`
	Listings []*entity.FoodListing `json:"listings"`
}

// DonorUsecase defines the interface for donor-facing operations.
type DonorUsecase interface {
	// GetDashboard retrieves the donor's own listings, newest first,
	// together with total/available/completed counts.
	GetDashboard(ctx context.Context, donorID uuid.UUID) (*DonorDashboardOutput, error)

	// CreateListing publishes a new listing in the available state.
	CreateListing(ctx context.Context, donorID uuid.UUID, input CreateListingInput) (*entity.FoodListing, error)

	// UpdateListing modifies an owned listing's descriptive fields.
	UpdateListing(ctx context.Context, donorID, listingID uuid.UUID, input UpdateListingInput) (*entity.FoodListing, error)

	// CompleteListing marks an available listing completed.
	CompleteListing(ctx context.Context, donorID, listingID uuid.UUID) error

	// CancelListing withdraws an available listing.
	CancelListing(ctx context.Context, donorID, listingID uuid.UUID) error

	// UploadListingImage stores an image for an owned listing and
	// returns its public URL.
	UploadListingImage(ctx context.Context, donorID, listingID uuid.UUID, contentType string, image io.Reader) (string, error)

	// ConfirmPickup resolves a scanned pickup QR code and moves the
	// donation from pending to in_transit.
	ConfirmPickup(ctx context.Context, donorID uuid.UUID, qrData string) (*entity.Donation, error)

	// ConfirmDelivery moves a donation from in_transit to delivered,
	// completes the underlying listing, and publishes a delivery event
	// for the impact pipeline.
	ConfirmDelivery(ctx context.Context, donorID, donationID uuid.UUID, impactNotes string) (*entity.Donation, error)
}
