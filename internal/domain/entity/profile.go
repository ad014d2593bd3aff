// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the core entity in the system, representing a unique person or
// organisation account. Exactly one profile exists per authenticated identity;
// the role is fixed at registration and gates which operations are available.
type Profile struct {
	ID               uuid.UUID // The unique identifier for the profile.
	Email            string    // The profile's contact email, also the login identifier.
	FullName         string    // The person's or organisation contact's display name.
	Role             Role      // One of admin, donor, recipient, analyst.
	OrganizationName string    // Optional organisation the profile acts for.
	Phone            string    // Optional contact phone number.
	Address          string    // Optional postal address.
	CreatedAt        time.Time // Timestamp of when this profile was created.
	UpdatedAt        time.Time // Timestamp of the last modification to this profile.
}
