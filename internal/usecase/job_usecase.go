package usecase

import (
	"context"

	"jobboard/internal/domain/service"

	"github.com/google/uuid"
)

// JobUsecase serves the public job listing. Only ACTIVE jobs are visible.
type JobUsecase interface {
	SearchJobs(ctx context.Context, query service.JobSearchQuery) ([]*JobDTO, error)
	GetAllActiveJobs(ctx context.Context) ([]*JobDTO, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*JobDTO, error)

	// JobQRCode renders a PNG QR code linking to the job.
	JobQRCode(ctx context.Context, jobID uuid.UUID) ([]byte, error)
}
