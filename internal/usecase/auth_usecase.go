// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "Bearer"

// --- Input DTOs ---

// RegisterJobSeekerInput defines the data required to register a job seeker.
type RegisterJobSeekerInput struct {
	FirstName      string   `json:"firstName" validate:"required,max=100"`
	LastName       string   `json:"lastName" validate:"required,max=100"`
	Email          string   `json:"email" validate:"required,email,max=255"`
	Password       string   `json:"password" validate:"required,min=6,max=72"`
	MobileNumber   string   `json:"mobileNumber" validate:"required,max=32"`
	DateOfBirth    string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Degree         string   `json:"degree" validate:"required,max=100"`
	LinkedinID     string   `json:"linkedinId" validate:"omitempty,max=255"`
	DesiredJobRole string   `json:"desiredJobRole" validate:"required,max=100"`
	Skills         []string `json:"skills" validate:"required,min=1"`
	PassedOutYear  int      `json:"passedOutYear" validate:"gte=1990,lte=2030"`
	CurrentSalary  float64  `json:"currentSalary" validate:"gte=0"`
	ExpectedSalary float64  `json:"expectedSalary" validate:"gte=0"`
}

// RegisterEmployerInput defines the data required to register an employer.
// Only the credentials and the company are mandatory.
type RegisterEmployerInput struct {
	FirstName    string `json:"firstName" validate:"omitempty,max=100"`
	LastName     string `json:"lastName" validate:"omitempty,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,max=32"`
	Designation  string `json:"designation" validate:"omitempty,max=100"`
	CompanyName  string `json:"companyName" validate:"required,max=255"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// --- Output DTOs ---

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token     string      `json:"token"`
	Type      string      `json:"type"`
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      entity.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// AuthUsecase defines registration, login and identity resolution.
type AuthUsecase interface {
	RegisterJobSeeker(ctx context.Context, input *RegisterJobSeekerInput) (*AuthResult, error)
	RegisterEmployer(ctx context.Context, input *RegisterEmployerInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// ResolvePrincipal maps a bearer token to its principal. An invalid token or
	// an unknown subject yields (nil, nil); only lookup failures return an error.
	ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error)

	// GetCurrentUser loads the principal's user. Lookup failures are logged and
	// reported as absent.
	GetCurrentUser(ctx context.Context, principal *entity.Principal) (*entity.User, bool)

	// ValidateToken returns the email of the user the token belongs to.
	ValidateToken(ctx context.Context, token string) (string, error)
}
