// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WasteAnalytic is an externally computed impact record attributed to a
// listing or donation. The application only reads these rows; they are
// produced by the downstream impact pipeline consuming donation events.
type WasteAnalytic struct {
	ID            uuid.UUID  `json:"id"`
	ListingID     *uuid.UUID `json:"listing_id"`
	DonationID    *uuid.UUID `json:"donation_id"`
	FoodSavedKg   float64    `json:"food_saved_kg"`
	MealsProvided int        `json:"meals_provided"`
	CO2SavedKg    float64    `json:"co2_saved_kg"`
	Category      string     `json:"category"`
	Date          time.Time  `json:"date"`
	CreatedAt     time.Time  `json:"created_at"`
}
