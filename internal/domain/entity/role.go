// Package entity contains the core business objects of the project.
package entity

// Role represents the part a profile plays in the marketplace.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleDonor indicates a food donor offering surplus food.
	RoleDonor Role = "donor"
	// RoleRecipient indicates a recipient organisation or individual.
	RoleRecipient Role = "recipient"
	// RoleAnalyst indicates a read-only impact analyst.
	RoleAnalyst Role = "analyst"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDonor, RoleRecipient, RoleAnalyst:
		return true
	default:
		return false
	}
}
