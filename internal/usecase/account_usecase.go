// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new profile.
// The role is fixed at signup and never changes afterwards.
type RegisterInput struct {
	FullName         string
	Email            string
	Password         string
	Role             entity.Role
	OrganizationName string
	Phone            string
	Address          string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the editable profile fields. Email and role
// are deliberately not editable.
type UpdateProfileInput struct {
	FullName         string
	OrganizationName string
	Phone            string
	Address          string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created profile's basic information.
type RegisterOutput struct {
	Profile *entity.Profile
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// RefreshOutput returns a fresh token pair after refresh token rotation.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AccountUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshSession validates the given refresh token, revokes it, and
	// issues a new token pair.
	RefreshSession(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)
}
