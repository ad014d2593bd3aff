package model

import (
	"time"

	"github.com/google/uuid"
)

// WasteAnalyticModel mirrors the 'waste_analytics' table. Rows are written by
// the external impact pipeline; the application treats the table as read-only.
type WasteAnalyticModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID     *uuid.UUID `gorm:"type:uuid"`
	DonationID    *uuid.UUID `gorm:"type:uuid"`
	FoodSavedKg   float64    `gorm:"not null;default:0"`
	MealsProvided int        `gorm:"not null;default:0"`
	CO2SavedKg    float64    `gorm:"not null;default:0"`
	Category      string     `gorm:"type:varchar(100);not null"`
	Date          time.Time  `gorm:"type:date;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WasteAnalyticModel) TableName() string {
	return "waste_analytics"
}
