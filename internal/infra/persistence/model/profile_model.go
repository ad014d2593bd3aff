// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ProfileModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	FullName         string    `gorm:"type:varchar(100);not null"`
	Role             string    `gorm:"type:varchar(20);not null;index"`
	OrganizationName string    `gorm:"type:varchar(255)"`
	Phone            string    `gorm:"type:varchar(50)"`
	Address          string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:ProfileID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
