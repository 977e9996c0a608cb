// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of account a user holds. It is also the
// discriminator for the profile variant attached to a User.
type Role string

const (
	// RoleJobSeeker is a candidate looking for work.
	RoleJobSeeker Role = "JOB_SEEKER"
	// RoleEmployer posts jobs and reviews applications.
	RoleEmployer Role = "EMPLOYER"
)

// authorityPrefix is prepended to the role to form the principal's permission tag.
const authorityPrefix = "ROLE_"

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return true
	default:
		return false
	}
}

// Authority returns the single permission tag derived from the role.
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}

// ParseRole accepts a role name in any case. Unknown names return false.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}
