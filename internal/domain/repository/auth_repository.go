package repository

import (
	"context"
	"errors"

	"foodbridge/internal/domain/entity"
)

// ErrAuthNotFound is returned when no authentication record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider user ID
	// (the email address for the "email" provider).
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
