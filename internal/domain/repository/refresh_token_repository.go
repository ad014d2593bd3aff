package repository

import (
	"context"
	"errors"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no refresh token matches.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a refresh token by its SHA-256 hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindByProfileID retrieves all refresh tokens for a profile, oldest first.
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entity.RefreshToken, error)

	// Delete removes a refresh token record, revoking the session.
	Delete(ctx context.Context, id uuid.UUID) error
}
