// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationStatus represents the lifecycle state of a donation.
type DonationStatus string

const (
	// DonationStatusPending indicates the donation awaits pickup.
	DonationStatusPending DonationStatus = "pending"
	// DonationStatusInTransit indicates the donor confirmed pickup.
	DonationStatusInTransit DonationStatus = "in_transit"
	// DonationStatusDelivered indicates the donor confirmed delivery. Terminal.
	DonationStatusDelivered DonationStatus = "delivered"
	// DonationStatusCancelled indicates the donation was abandoned. Terminal.
	DonationStatusCancelled DonationStatus = "cancelled"
)

// String returns the string representation of the DonationStatus.
func (s DonationStatus) String() string {
	return string(s)
}

// IsValid checks if the DonationStatus is a valid value.
func (s DonationStatus) IsValid() bool {
	switch s {
	case DonationStatusPending, DonationStatusInTransit, DonationStatusDelivered, DonationStatusCancelled:
		return true
	default:
		return false
	}
}

// Donation is the record linking a specific listing's reservation to the
// requesting recipient. It is created when a recipient reserves a listing.
type Donation struct {
	ID           uuid.UUID      `json:"id"`            // The unique identifier for the donation.
	ListingID    uuid.UUID      `json:"listing_id"`    // The reserved listing.
	DonorID      uuid.UUID      `json:"donor_id"`      // The listing's owner at reservation time.
	RecipientID  uuid.UUID      `json:"recipient_id"`  // The recipient who reserved the listing.
	RequestID    *uuid.UUID     `json:"request_id"`    // Optional donation request this reservation satisfies.
	Quantity     string         `json:"quantity"`      // Free-text quantity, copied from the listing.
	Status       DonationStatus `json:"status"`        // Current lifecycle state.
	PickupDate   *time.Time     `json:"pickup_date"`   // Set when the donor confirms pickup.
	DeliveryDate *time.Time     `json:"delivery_date"` // Set when the donor confirms delivery.
	ImpactNotes  string         `json:"impact_notes"`  // Optional free-text impact notes recorded at delivery.
	CreatedAt    time.Time      `json:"created_at"`    // Timestamp of when this donation was created.
	UpdatedAt    time.Time      `json:"updated_at"`    // Timestamp of the last modification.
}
