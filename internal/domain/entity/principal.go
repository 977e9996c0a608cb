package entity

import "github.com/google/uuid"

// Principal is the authenticated caller of a request, established by the
// request filter and passed explicitly into usecases.
type Principal struct {
	UserID    uuid.UUID
	Email     string
	Role      Role
	Authority string
}

// NewPrincipal builds the principal for an authenticated user.
func NewPrincipal(user *User) *Principal {
	return &Principal{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Authority: user.Role.Authority(),
	}
}

// HasRole reports whether the principal holds role. A nil principal holds none.
func (p *Principal) HasRole(role Role) bool {
	return p != nil && p.Role == role
}
