package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateJobSeekerProfileInput replaces the editable job seeker fields.
type UpdateJobSeekerProfileInput struct {
	FirstName      string   `json:"firstName" validate:"required,max=100"`
	LastName       string   `json:"lastName" validate:"required,max=100"`
	MobileNumber   string   `json:"mobileNumber" validate:"omitempty,max=32"`
	DateOfBirth    string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Degree         string   `json:"degree" validate:"omitempty,max=100"`
	LinkedinID     string   `json:"linkedinId" validate:"omitempty,max=255"`
	DesiredJobRole string   `json:"desiredJobRole" validate:"omitempty,max=100"`
	Skills         []string `json:"skills" validate:"required,min=1"`
	PassedOutYear  int      `json:"passedOutYear" validate:"omitempty,gte=1990,lte=2030"`
	CurrentSalary  float64  `json:"currentSalary" validate:"gte=0"`
	ExpectedSalary float64  `json:"expectedSalary" validate:"gte=0"`
}

// JobSeekerUsecase is available to principals with the JOB_SEEKER role only.
type JobSeekerUsecase interface {
	GetProfile(ctx context.Context, principal *entity.Principal) (*JobSeekerDTO, error)
	UpdateProfile(ctx context.Context, principal *entity.Principal, input *UpdateJobSeekerProfileInput) (*JobSeekerDTO, error)
	ApplyForJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) (*ApplicationDTO, error)
	GetMyApplications(ctx context.Context, principal *entity.Principal) ([]*ApplicationDTO, error)
}
