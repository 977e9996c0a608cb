package repository

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrApplicationNotFound is returned when no application matches the lookup.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrDuplicateApplication is returned when the (job seeker, job) unique index rejects a write.
	ErrDuplicateApplication = errors.New("application already exists")
)

// ApplicationRepository persists job applications. List methods load the
// job seeker, the job and the job's employer, ordered by AppliedAt descending.
type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error

	// UpdateStatus changes only the status and UpdatedAt.
	UpdateStatus(ctx context.Context, application *entity.Application) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	ExistsByJobSeekerAndJob(ctx context.Context, jobSeekerID, jobID uuid.UUID) (bool, error)

	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Application, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*entity.Application, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]*entity.Application, error)
}
