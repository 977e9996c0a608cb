package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateEmployerProfileInput replaces the editable employer fields.
type UpdateEmployerProfileInput struct {
	FirstName    string `json:"firstName" validate:"omitempty,max=100"`
	LastName     string `json:"lastName" validate:"omitempty,max=100"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,max=32"`
	Designation  string `json:"designation" validate:"omitempty,max=100"`
	CompanyName  string `json:"companyName" validate:"required,max=255"`
}

// JobInput is the body of job create and update requests.
type JobInput struct {
	JobTitle       string   `json:"jobTitle" validate:"required,max=255"`
	JobDescription string   `json:"jobDescription" validate:"required,max=1000"`
	RequiredSkills []string `json:"requiredSkills" validate:"required,min=1"`
	MinExperience  int      `json:"minExperience" validate:"gte=0"`
	MaxExperience  int      `json:"maxExperience" validate:"gte=0"`
	MinSalary      float64  `json:"minSalary" validate:"gte=0"`
	MaxSalary      float64  `json:"maxSalary" validate:"gte=0"`
	Location       string   `json:"location" validate:"required,max=255"`
}

// CandidateSearchInput holds comma separated skill and job role terms.
type CandidateSearchInput struct {
	Skills  string `query:"skills"`
	JobRole string `query:"jobRole"`
}

// EmployerUsecase is available to principals with the EMPLOYER role only.
type EmployerUsecase interface {
	GetProfile(ctx context.Context, principal *entity.Principal) (*EmployerDTO, error)
	UpdateProfile(ctx context.Context, principal *entity.Principal, input *UpdateEmployerProfileInput) (*EmployerDTO, error)

	CreateJob(ctx context.Context, principal *entity.Principal, input *JobInput) (*JobDTO, error)
	GetMyJobs(ctx context.Context, principal *entity.Principal) ([]*JobDTO, error)
	GetMyJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) (*JobDTO, error)
	UpdateJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID, input *JobInput) (*JobDTO, error)

	// CloseJob moves the job to CLOSED; its applications are kept.
	CloseJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) error

	SearchCandidates(ctx context.Context, principal *entity.Principal, input *CandidateSearchInput) ([]*JobSeekerDTO, error)

	GetJobApplications(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) ([]*ApplicationDTO, error)
	GetAllMyJobApplications(ctx context.Context, principal *entity.Principal) ([]*ApplicationDTO, error)
	UpdateApplicationStatus(ctx context.Context, principal *entity.Principal, applicationID uuid.UUID, status string) (*ApplicationDTO, error)
}
