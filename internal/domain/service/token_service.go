package service

import (
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the verified identity extracted from an access token.
type Claims struct {
	ProfileID uuid.UUID
	Role      entity.Role
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given profile.
	GenerateTokens(profileID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns the profile ID it was issued to.
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)

	// HashToken returns the SHA-256 hex digest of a raw token, used to
	// store and look up refresh tokens without keeping them in plain text.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
