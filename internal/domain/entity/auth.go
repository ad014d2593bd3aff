// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider currently supported.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
// Today this is always an email/password pair; the provider field leaves
// room for external identity providers later.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	ProfileID      uuid.UUID // Links this authentication method to the Profile it belongs to.
	Provider       string    // The authentication provider, e.g. "email".
	ProviderUserID string    // The identifier at the provider; the email address for "email".
	PasswordHash   string    // Stores the bcrypt-hashed password, only used when the Provider is "email".
	CreatedAt      time.Time // Timestamp of when this authentication method was created.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires,
// without requiring credentials again.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	ProfileID uuid.UUID // Links this session to the Profile it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created.
}
