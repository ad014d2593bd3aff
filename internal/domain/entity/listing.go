// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus represents the lifecycle state of a food listing.
type ListingStatus string

const (
	// ListingStatusAvailable indicates the listing is open for reservation.
	ListingStatusAvailable ListingStatus = "available"
	// ListingStatusReserved indicates a recipient has claimed the listing.
	ListingStatusReserved ListingStatus = "reserved"
	// ListingStatusCompleted indicates the food was handed over. Terminal.
	ListingStatusCompleted ListingStatus = "completed"
	// ListingStatusCancelled indicates the donor withdrew the listing. Terminal.
	ListingStatusCancelled ListingStatus = "cancelled"
)

// String returns the string representation of the ListingStatus.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusAvailable, ListingStatusReserved, ListingStatusCompleted, ListingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from this state.
func (s ListingStatus) IsTerminal() bool {
	return s == ListingStatusCompleted || s == ListingStatusCancelled
}

// FoodListing represents a donor's offer of surplus food available for pickup.
type FoodListing struct {
	ID                 uuid.UUID     `json:"id"`                  // The unique identifier for the listing.
	DonorID            uuid.UUID     `json:"donor_id"`            // The profile that owns this listing.
	Title              string        `json:"title"`               // Short human-readable title.
	Description        string        `json:"description"`         // Details about the offered food.
	Category           string        `json:"category"`            // Free-form category label, e.g. "Produce", "Bakery".
	Quantity           string        `json:"quantity"`            // Free-text quantity, e.g. "10 kg" or "3 crates".
	ExpiryDate         *time.Time    `json:"expiry_date"`         // Optional best-before date.
	PickupLocation     string        `json:"pickup_location"`     // Where the food can be collected.
	PickupInstructions string        `json:"pickup_instructions"` // Optional collection instructions.
	Status             ListingStatus `json:"status"`              // Current lifecycle state.
	ImageURL           string        `json:"image_url"`           // Optional photo of the offered food.
	CreatedAt          time.Time     `json:"created_at"`          // Timestamp of when this listing was created.
	UpdatedAt          time.Time     `json:"updated_at"`          // Timestamp of the last modification.
}
