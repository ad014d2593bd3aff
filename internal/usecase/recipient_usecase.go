package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput defines the data required to post a donation request.
type CreateRequestInput struct {
	Title          string
	Description    string
	Category       string
	QuantityNeeded string
	Urgency        entity.Urgency
	ListingID      *uuid.UUID
}

// RecipientStats summarises the marketplace from a recipient's point of view.
type RecipientStats struct {
	Available  int `json:"available"`
	MyRequests int `json:"myRequests"`
	Fulfilled  int `json:"fulfilled"`
}

// RecipientDashboardOutput bundles available listings and the recipient's
// own requests with their stats.
type RecipientDashboardOutput struct {
	Stats    RecipientStats            `json:"stats"`
	Listings []*entity.FoodListing     `json:"listings"`
	Requests []*entity.DonationRequest `json:"requests"`
}

// RecipientUsecase defines the interface for recipient-facing operations.
type RecipientUsecase interface {
	// GetDashboard retrieves available listings and the recipient's own
	// requests, both newest first, together with the stats counters.
	GetDashboard(ctx context.Context, recipientID uuid.UUID) (*RecipientDashboardOutput, error)

	// BrowseListings retrieves every available listing, newest first.
	BrowseListings(ctx context.Context) ([]*entity.FoodListing, error)

	// ReserveListing claims an available listing for the recipient. A
	// donation record is created and the listing flips to reserved in a
	// single transaction; losing a reservation race returns
	// ErrListingNotAvailable. An optional request links the reservation
	// to one of the recipient's donation requests.
	ReserveListing(ctx context.Context, recipientID, listingID uuid.UUID, requestID *uuid.UUID) (*entity.Donation, error)

	// CreateRequest posts a new donation request in the open state.
	CreateRequest(ctx context.Context, recipientID uuid.UUID, input CreateRequestInput) (*entity.DonationRequest, error)

	// FulfillRequest marks an own open request fulfilled.
	FulfillRequest(ctx context.Context, recipientID, requestID uuid.UUID) error

	// CancelRequest withdraws an own open request.
	CancelRequest(ctx context.Context, recipientID, requestID uuid.UUID) error

	// GetPickupQR renders the QR code (PNG) the recipient presents at
	// pickup for one of their undelivered donations.
	GetPickupQR(ctx context.Context, recipientID, donationID uuid.UUID) ([]byte, error)
}
