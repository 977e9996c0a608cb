package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type jobService struct {
	jobRepo  repository.JobRepository
	jobCache service.JobCache
	qrCode   service.QRCodeService
	logger   *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo  repository.JobRepository
	JobCache service.JobCache
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		jobRepo:  params.JobRepo,
		jobCache: params.JobCache,
		qrCode:   params.QRCode,
		logger:   params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *jobService) SearchJobs(ctx context.Context, query service.JobSearchQuery) ([]*usecase.JobDTO, error) {
	if query.IsEmpty() {
		return srv.GetAllActiveJobs(ctx)
	}

	if jobs, ok := srv.cachedSearch(ctx, query); ok {
		return usecase.NewJobDTOs(jobs), nil
	}

	active, err := srv.jobRepo.ListByStatus(ctx, entity.JobStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active jobs")
	}

	matched := make([]*entity.Job, 0, len(active))
	for _, job := range active {
		if matchesJobQuery(job, query) {
			matched = append(matched, job)
		}
	}

	if err := srv.jobCache.SetSearch(ctx, query, matched); err != nil {
		srv.log(ctx).Warn("Failed to cache job search", slog.Any("error", err))
	}

	return usecase.NewJobDTOs(matched), nil
}

func (srv *jobService) GetAllActiveJobs(ctx context.Context) ([]*usecase.JobDTO, error) {
	jobs, hit, err := srv.jobCache.GetActiveJobs(ctx)
	if err != nil {
		srv.log(ctx).Warn("Job cache read failed", slog.Any("error", err))
	}
	if hit {
		return usecase.NewJobDTOs(jobs), nil
	}

	jobs, err = srv.jobRepo.ListByStatus(ctx, entity.JobStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active jobs")
	}

	if err := srv.jobCache.SetActiveJobs(ctx, jobs); err != nil {
		srv.log(ctx).Warn("Failed to cache active jobs", slog.Any("error", err))
	}

	return usecase.NewJobDTOs(jobs), nil
}

func (srv *jobService) GetJob(ctx context.Context, jobID uuid.UUID) (*usecase.JobDTO, error) {
	job, err := srv.activeJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return usecase.NewJobDTO(job), nil
}

func (srv *jobService) JobQRCode(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	job, err := srv.activeJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateJobQR(job.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render job QR code")
	}

	return png, nil
}

func (srv *jobService) cachedSearch(ctx context.Context, query service.JobSearchQuery) ([]*entity.Job, bool) {
	jobs, hit, err := srv.jobCache.GetSearch(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Job cache read failed", slog.Any("error", err))

		return nil, false
	}

	return jobs, hit
}

// activeJob hides jobs that are not ACTIVE from the public listing.
func (srv *jobService) activeJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrJobNotFound)
		}

		return nil, errors.Wrap(err, "failed to find job")
	}
	if !job.IsActive() {
		return nil, errors.Wrapf(domainerrors.ErrJobNotFound, "job is %s", job.Status)
	}

	return job, nil
}
