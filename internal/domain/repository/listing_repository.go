package repository

import (
	"context"
	"errors"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrListingNotFound is returned when a food listing is not found.
	ErrListingNotFound = errors.New("listing not found")

	// ErrListingStatusConflict is returned when a guarded status transition
	// matched no row, i.e. the listing was not in the expected state.
	ErrListingStatusConflict = errors.New("listing status conflict")
)

// ListingRepository defines the standard operations for food listing persistence.
type ListingRepository interface {
	// FindByID retrieves a single listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodListing, error)

	// FindByDonor retrieves all listings owned by a donor, newest first.
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.FoodListing, error)

	// FindByStatus retrieves all listings in the given state, newest first.
	FindByStatus(ctx context.Context, status entity.ListingStatus) ([]*entity.FoodListing, error)

	// FindAll retrieves every listing, newest first.
	FindAll(ctx context.Context) ([]*entity.FoodListing, error)

	// Create persists a new listing. The storage assigns ID and timestamps.
	Create(ctx context.Context, listing *entity.FoodListing) error

	// Update modifies the editable fields of an existing listing.
	Update(ctx context.Context, listing *entity.FoodListing) error

	// UpdateStatusFrom transitions a listing from one state to another.
	// The update is conditional on the current state; if the listing is no
	// longer in the expected state, ErrListingStatusConflict is returned and
	// nothing is written.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error

	// UpdateImageURL sets the stored image reference for a listing.
	UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error
}
