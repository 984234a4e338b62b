// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the commercial role an account plays on the platform.
type Role string

const (
	// RoleSeller indicates an account that lists and sells products.
	RoleSeller Role = "seller"
	// RoleBuyer indicates a regular purchasing account.
	RoleBuyer Role = "buyer"
	// RoleManager indicates a platform staff account.
	RoleManager Role = "manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSeller, RoleBuyer, RoleManager:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
