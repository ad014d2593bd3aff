// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Urgency is the recipient-declared priority of a donation request.
// It exists for human triage only; no system behaviour depends on it.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// String returns the string representation of the Urgency.
func (u Urgency) String() string {
	return string(u)
}

// IsValid checks if the Urgency is a valid value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	default:
		return false
	}
}

// RequestStatus represents the lifecycle state of a donation request.
type RequestStatus string

const (
	// RequestStatusOpen indicates the request is awaiting fulfilment.
	RequestStatusOpen RequestStatus = "open"
	// RequestStatusInProgress is a valid state kept for forward
	// compatibility; no current operation sets it.
	RequestStatusInProgress RequestStatus = "in_progress"
	// RequestStatusFulfilled indicates the recipient marked the request met. Terminal.
	RequestStatusFulfilled RequestStatus = "fulfilled"
	// RequestStatusCancelled indicates the recipient withdrew the request. Terminal.
	RequestStatusCancelled RequestStatus = "cancelled"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusFulfilled, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// DonationRequest represents a recipient's stated need for food,
// independent of any specific listing.
type DonationRequest struct {
	ID             uuid.UUID     `json:"id"`              // The unique identifier for the request.
	RecipientID    uuid.UUID     `json:"recipient_id"`    // The profile that owns this request.
	ListingID      *uuid.UUID    `json:"listing_id"`      // Optional link to a listing that prompted the request.
	Title          string        `json:"title"`           // Short human-readable title.
	Description    string        `json:"description"`     // Details about the need.
	Category       string        `json:"category"`        // Free-form category label.
	QuantityNeeded string        `json:"quantity_needed"` // Free-text quantity, e.g. "meals for 40".
	Urgency        Urgency       `json:"urgency"`         // Recipient-declared priority.
	Status         RequestStatus `json:"status"`          // Current lifecycle state.
	CreatedAt      time.Time     `json:"created_at"`      // Timestamp of when this request was created.
	UpdatedAt      time.Time     `json:"updated_at"`      // Timestamp of the last modification.
}
