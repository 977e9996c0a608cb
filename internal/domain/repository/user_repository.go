// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the unique email index rejects a write.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository persists users together with their role profile.
type UserRepository interface {
	// FindByID retrieves a user and its profile variant.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether the normalized email is taken.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts the user row and the profile matching its role.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the user row and its profile.
	Update(ctx context.Context, user *entity.User) error

	// ListJobSeekers returns every job seeker with its profile.
	ListJobSeekers(ctx context.Context) ([]*entity.User, error)
}
