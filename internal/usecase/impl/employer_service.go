package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"
	"jobboard/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type employerService struct {
	txManager repository.TransactionManager
	authUC    usecase.AuthUsecase
	userRepo  repository.UserRepository
	jobRepo   repository.JobRepository
	appRepo   repository.ApplicationRepository
	jobCache  service.JobCache
	events    eventNotifier
	logger    *slog.Logger
}

// EmployerServiceParams holds dependencies for EmployerService, injected by Fx.
type EmployerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AuthUC    usecase.AuthUsecase
	UserRepo  repository.UserRepository
	JobRepo   repository.JobRepository
	AppRepo   repository.ApplicationRepository
	JobCache  service.JobCache
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewEmployerService is the constructor for employerService.
func NewEmployerService(params EmployerServiceParams) usecase.EmployerUsecase {
	return &employerService{
		txManager: params.TxManager,
		authUC:    params.AuthUC,
		userRepo:  params.UserRepo,
		jobRepo:   params.JobRepo,
		appRepo:   params.AppRepo,
		jobCache:  params.JobCache,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *employerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *employerService) employer(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	return requireRole(ctx, srv.authUC, principal, entity.RoleEmployer)
}

func (srv *employerService) GetProfile(ctx context.Context, principal *entity.Principal) (*usecase.EmployerDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	return usecase.NewEmployerDTO(user), nil
}

func (srv *employerService) UpdateProfile(ctx context.Context, principal *entity.Principal, input *usecase.UpdateEmployerProfileInput) (*usecase.EmployerDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.MobileNumber = input.MobileNumber
	if user.EmployerProfile == nil {
		user.EmployerProfile = &entity.EmployerProfile{UserID: user.ID}
	}
	user.EmployerProfile.Designation = input.Designation
	user.EmployerProfile.CompanyName = input.CompanyName

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Update(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update employer profile")
	}

	// Cached listings embed the employer and company names.
	invalidateJobs(ctx, srv.jobCache, srv.logger)

	srv.log(ctx).Info("Employer profile updated", slog.Any("userID", user.ID))

	return usecase.NewEmployerDTO(user), nil
}

func (srv *employerService) CreateJob(ctx context.Context, principal *entity.Principal, input *usecase.JobInput) (*usecase.JobDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	job := &entity.Job{
		EmployerID: user.ID,
		Status:     entity.JobStatusActive,
	}
	applyJobInput(job, input)

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}
	job.Employer = user

	srv.log(ctx).Info("Job created", slog.Any("jobID", job.ID), slog.Any("employerID", user.ID))
	srv.jobChanged(ctx, constants.EventJobCreated, job)

	return usecase.NewJobDTO(job), nil
}

func (srv *employerService) GetMyJobs(ctx context.Context, principal *entity.Principal) ([]*usecase.JobDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	jobs, err := srv.jobRepo.ListByEmployer(ctx, user.ID, entity.JobStatusActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employer jobs")
	}
	for _, job := range jobs {
		job.Employer = user
	}

	return usecase.NewJobDTOs(jobs), nil
}

func (srv *employerService) GetMyJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) (*usecase.JobDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	job, err := srv.findOwnedJob(ctx, user.ID, jobID)
	if err != nil {
		return nil, err
	}

	return usecase.NewJobDTO(job), nil
}

func (srv *employerService) UpdateJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID, input *usecase.JobInput) (*usecase.JobDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	job, err := srv.findOwnedJob(ctx, user.ID, jobID)
	if err != nil {
		return nil, err
	}

	applyJobInput(job, input)
	if err := srv.jobRepo.Update(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to update job")
	}

	srv.log(ctx).Info("Job updated", slog.Any("jobID", job.ID))
	srv.jobChanged(ctx, constants.EventJobUpdated, job)

	return usecase.NewJobDTO(job), nil
}

func (srv *employerService) CloseJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) error {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return err
	}

	job, err := srv.findOwnedJob(ctx, user.ID, jobID)
	if err != nil {
		return err
	}

	job.Status = entity.JobStatusClosed
	if err := srv.jobRepo.Update(ctx, job); err != nil {
		return errors.Wrap(err, "failed to close job")
	}

	srv.log(ctx).Info("Job closed", slog.Any("jobID", job.ID))
	srv.jobChanged(ctx, constants.EventJobClosed, job)

	return nil
}

func (srv *employerService) SearchCandidates(ctx context.Context, principal *entity.Principal, input *usecase.CandidateSearchInput) ([]*usecase.JobSeekerDTO, error) {
	if _, err := srv.employer(ctx, principal); err != nil {
		return nil, err
	}

	candidates, err := srv.userRepo.ListJobSeekers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job seekers")
	}

	skillTerms := util.SplitTerms(input.Skills)
	roleTerms := util.SplitTerms(input.JobRole)
	if len(skillTerms) == 0 && len(roleTerms) == 0 {
		return usecase.NewJobSeekerDTOs(candidates), nil
	}
	// Without a role filter the skill terms also search the desired role.
	if len(roleTerms) == 0 {
		roleTerms = skillTerms
	}

	matched := make([]*entity.User, 0, len(candidates))
	for _, candidate := range candidates {
		if matchesCandidate(candidate, skillTerms, roleTerms) {
			matched = append(matched, candidate)
		}
	}

	return usecase.NewJobSeekerDTOs(matched), nil
}

func (srv *employerService) GetJobApplications(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) ([]*usecase.ApplicationDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	if _, err := srv.findOwnedJob(ctx, user.ID, jobID); err != nil {
		return nil, err
	}

	applications, err := srv.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job applications")
	}

	return usecase.NewApplicationDTOs(applications), nil
}

func (srv *employerService) GetAllMyJobApplications(ctx context.Context, principal *entity.Principal) ([]*usecase.ApplicationDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	applications, err := srv.appRepo.ListByEmployer(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employer applications")
	}

	return usecase.NewApplicationDTOs(applications), nil
}

func (srv *employerService) UpdateApplicationStatus(ctx context.Context, principal *entity.Principal, applicationID uuid.UUID, status string) (*usecase.ApplicationDTO, error) {
	user, err := srv.employer(ctx, principal)
	if err != nil {
		return nil, err
	}

	newStatus, ok := entity.ParseApplicationStatus(status)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidApplicationStatus.WithDetails("status: " + status))
	}

	application, err := srv.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "application not found")
		}

		return nil, errors.Wrap(err, "failed to find application")
	}
	if application.Job == nil || !application.Job.IsOwnedBy(user.ID) {
		srv.log(ctx).Warn("Status change on foreign application",
			slog.Any("applicationID", applicationID),
			slog.Any("employerID", user.ID),
		)

		return nil, errors.Wrap(domainerrors.ErrNotFound, "application not owned by caller")
	}

	previous := application.Status
	application.Status = newStatus
	if err := srv.appRepo.UpdateStatus(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to update application status")
	}

	srv.events.notify(ctx, constants.EventApplicationStatusChanged, map[string]string{
		"application_id":  application.ID.String(),
		"job_id":          application.JobID.String(),
		"job_seeker_id":   application.JobSeekerID.String(),
		"previous_status": string(previous),
		"status":          string(newStatus),
	})

	return usecase.NewApplicationDTO(application), nil
}

// findOwnedJob hides jobs of other employers behind the same NotFound as missing ones.
func (srv *employerService) findOwnedJob(ctx context.Context, employerID, jobID uuid.UUID) (*entity.Job, error) {
	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "job not found")
		}

		return nil, errors.Wrap(err, "failed to find job")
	}
	if !job.IsOwnedBy(employerID) {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "job not owned by caller")
	}

	return job, nil
}

func (srv *employerService) jobChanged(ctx context.Context, eventType string, job *entity.Job) {
	invalidateJobs(ctx, srv.jobCache, srv.logger)
	srv.events.notify(ctx, eventType, map[string]string{
		"job_id":      job.ID.String(),
		"employer_id": job.EmployerID.String(),
		"status":      string(job.Status),
	})
}

func applyJobInput(job *entity.Job, input *usecase.JobInput) {
	job.Title = input.JobTitle
	job.Description = input.JobDescription
	job.RequiredSkills = util.NormalizeSkills(input.RequiredSkills)
	job.MinExperience = input.MinExperience
	job.MaxExperience = input.MaxExperience
	job.MinSalary = input.MinSalary
	job.MaxSalary = input.MaxSalary
	job.Location = input.Location
}
