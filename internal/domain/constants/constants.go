// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Donation event types published for the external impact pipeline.
const (
	EventTypeDonationReserved  = "donation.reserved"
	EventTypeDonationDelivered = "donation.delivered"
)
