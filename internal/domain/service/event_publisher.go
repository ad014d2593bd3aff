package service

import (
	"context"
)

// DonationEvent is published on donation lifecycle changes. The external
// impact pipeline consumes these events and writes the waste_analytics rows
// this application reads back for reporting.
type DonationEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`                 // e.g. donation.reserved, donation.delivered
	DonationID  string `json:"donation_id"`
	ListingID   string `json:"listing_id"`
	DonorID     string `json:"donor_id"`
	RecipientID string `json:"recipient_id"`
	Category    string `json:"category"` // Listing category, for impact attribution
	Quantity    string `json:"quantity"` // Free-text quantity as listed
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonationEvent publishes a donation lifecycle event for async processing
	PublishDonationEvent(ctx context.Context, event *DonationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
