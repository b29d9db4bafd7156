// Package entity contains the core business objects of the project.
package entity

// Role represents the platform role attached to a user account.
// Roles are exclusive tags: an admin does not implicitly satisfy a
// client requirement and vice versa.
type Role string

const (
	// RoleUser indicates a plain account with no profile attached yet.
	RoleUser Role = "user"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleClient indicates an advertiser account.
	RoleClient Role = "client"
	// RoleDriver indicates a driver account.
	RoleDriver Role = "driver"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleClient, RoleDriver:
		return true
	default:
		return false
	}
}
