package repository

import (
	"context"
	"errors"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDonationNotFound is returned when a donation is not found.
var ErrDonationNotFound = errors.New("donation not found")

// DonationRepository defines the standard operations for donation persistence.
type DonationRepository interface {
	// FindByID retrieves a single donation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)

	// FindByRecipient retrieves all donations for a recipient, newest first.
	FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Donation, error)

	// FindByDonor retrieves all donations against a donor's listings, newest first.
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.Donation, error)

	// FindByListing retrieves all donations referencing a listing, newest first.
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*entity.Donation, error)

	// FindAll retrieves every donation, newest first.
	FindAll(ctx context.Context) ([]*entity.Donation, error)

	// Create persists a new donation. The storage assigns ID and timestamps.
	Create(ctx context.Context, donation *entity.Donation) error

	// Update modifies an existing donation (status, pickup/delivery dates, notes).
	Update(ctx context.Context, donation *entity.Donation) error
}
