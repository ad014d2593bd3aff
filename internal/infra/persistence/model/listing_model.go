package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodListingModel mirrors the 'food_listings' table.
type FoodListingModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Title              string    `gorm:"type:varchar(255);not null"`
	Description        string    `gorm:"type:text;not null"`
	Category           string    `gorm:"type:varchar(100);not null"`
	Quantity           string    `gorm:"type:varchar(100);not null"`
	ExpiryDate         *time.Time
	PickupLocation     string `gorm:"type:text;not null"`
	PickupInstructions string `gorm:"type:text"`
	Status             string `gorm:"type:varchar(20);not null;index;default:available"`
	ImageURL           string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Donor *ProfileModel `gorm:"foreignKey:DonorID"`
}

// TableName explicitly sets the table name for GORM.
func (FoodListingModel) TableName() string {
	return "food_listings"
}
