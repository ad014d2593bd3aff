package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"
)

// AdminOverview aggregates marketplace-wide counters for the admin dashboard.
type AdminOverview struct {
	UsersByRole      map[string]int `json:"usersByRole"`
	ListingsByStatus map[string]int `json:"listingsByStatus"`
	RequestsTotal    int            `json:"requestsTotal"`
	RequestsOpen     int            `json:"requestsOpen"`
}

// AdminUsecase defines the interface for the admin's read-only views.
type AdminUsecase interface {
	// GetOverview counts users by role, listings by status, and requests.
	GetOverview(ctx context.Context) (*AdminOverview, error)

	// ListProfiles retrieves every profile, optionally filtered by role.
	ListProfiles(ctx context.Context, role *entity.Role) ([]*entity.Profile, error)

	// ListListings retrieves every listing, optionally filtered by status.
	ListListings(ctx context.Context, status *entity.ListingStatus) ([]*entity.FoodListing, error)
}
