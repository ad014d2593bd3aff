package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationRequestModel mirrors the 'donation_requests' table.
type DonationRequestModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ListingID      *uuid.UUID `gorm:"type:uuid"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text;not null"`
	Category       string     `gorm:"type:varchar(100);not null"`
	QuantityNeeded string     `gorm:"type:varchar(100);not null"`
	Urgency        string     `gorm:"type:varchar(20);not null;default:medium"`
	Status         string     `gorm:"type:varchar(20);not null;index;default:open"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Recipient *ProfileModel     `gorm:"foreignKey:RecipientID"`
	Listing   *FoodListingModel `gorm:"foreignKey:ListingID"`
}

// TableName explicitly sets the table name for GORM.
func (DonationRequestModel) TableName() string {
	return "donation_requests"
}
