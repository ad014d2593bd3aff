package repository

import (
	"context"
	"errors"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRequestNotFound is returned when a donation request is not found.
	ErrRequestNotFound = errors.New("donation request not found")

	// ErrRequestStatusConflict is returned when a guarded status transition
	// matched no row.
	ErrRequestStatusConflict = errors.New("donation request status conflict")
)

// RequestRepository defines the standard operations for donation request persistence.
type RequestRepository interface {
	// FindByID retrieves a single donation request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationRequest, error)

	// FindByRecipient retrieves all requests owned by a recipient, newest first.
	FindByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.DonationRequest, error)

	// FindAll retrieves every request, newest first.
	FindAll(ctx context.Context) ([]*entity.DonationRequest, error)

	// Create persists a new donation request. The storage assigns ID and timestamps.
	Create(ctx context.Context, request *entity.DonationRequest) error

	// UpdateStatusFrom transitions a request from one state to another,
	// conditional on the current state. Returns ErrRequestStatusConflict when
	// the request was not in the expected state.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) error
}
