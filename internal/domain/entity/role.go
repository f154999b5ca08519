package entity

import "slices"

// Role represents the kind of account acting in the system.
type Role string

const (
	// RoleCreator indicates an influencer account.
	RoleCreator Role = "creator"
	// RoleBrand indicates a company account that posts campaigns.
	RoleBrand Role = "brand"
	// RoleAdmin indicates an operator account. Tokens may carry it, but no
	// public endpoint mints it.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is part of the closed role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleCreator, RoleBrand, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSignupRole reports whether accounts of this role can self-register.
func (r Role) IsSignupRole() bool {
	return r == RoleCreator || r == RoleBrand
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
