package repository

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when no job matches the lookup.
var ErrJobNotFound = errors.New("job not found")

// JobRepository persists job postings. There is no delete; jobs are closed.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	Update(ctx context.Context, job *entity.Job) error

	// FindByID returns the job with its employer loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// ListByEmployer returns the employer's jobs in the given status, newest first.
	ListByEmployer(ctx context.Context, employerID uuid.UUID, status entity.JobStatus) ([]*entity.Job, error)

	// ListByStatus returns all jobs in the given status with employers loaded, newest first.
	ListByStatus(ctx context.Context, status entity.JobStatus) ([]*entity.Job, error)
}
