// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"jobboard/config"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher reads the cost from auth.bcryptCost, falling back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into bcrypt's accepted range.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password. bcrypt only
// accepts 72 bytes, so longer input is a validation failure.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes"))
	}
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
