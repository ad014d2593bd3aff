package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel mirrors the 'donations' table.
type DonationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DonorID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestID    *uuid.UUID `gorm:"type:uuid"`
	Quantity     string     `gorm:"type:varchar(100);not null"`
	Status       string     `gorm:"type:varchar(20);not null;index;default:pending"`
	PickupDate   *time.Time
	DeliveryDate *time.Time
	ImpactNotes  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Listing   *FoodListingModel     `gorm:"foreignKey:ListingID"`
	Donor     *ProfileModel         `gorm:"foreignKey:DonorID"`
	Recipient *ProfileModel         `gorm:"foreignKey:RecipientID"`
	Request   *DonationRequestModel `gorm:"foreignKey:RequestID"`
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
