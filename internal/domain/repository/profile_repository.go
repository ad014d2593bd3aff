// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a single profile by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// FindAll retrieves every profile, newest first. An optional role filters the result.
	FindAll(ctx context.Context, role *entity.Role) ([]*entity.Profile, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.Profile) error
}
