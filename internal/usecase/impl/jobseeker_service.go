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

type jobSeekerService struct {
	txManager repository.TransactionManager
	authUC    usecase.AuthUsecase
	jobRepo   repository.JobRepository
	appRepo   repository.ApplicationRepository
	events    eventNotifier
	logger    *slog.Logger
}

// JobSeekerServiceParams holds dependencies for JobSeekerService, injected by Fx.
type JobSeekerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AuthUC    usecase.AuthUsecase
	JobRepo   repository.JobRepository
	AppRepo   repository.ApplicationRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewJobSeekerService is the constructor for jobSeekerService.
func NewJobSeekerService(params JobSeekerServiceParams) usecase.JobSeekerUsecase {
	return &jobSeekerService{
		txManager: params.TxManager,
		authUC:    params.AuthUC,
		jobRepo:   params.JobRepo,
		appRepo:   params.AppRepo,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *jobSeekerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *jobSeekerService) jobSeeker(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	return requireRole(ctx, srv.authUC, principal, entity.RoleJobSeeker)
}

func (srv *jobSeekerService) GetProfile(ctx context.Context, principal *entity.Principal) (*usecase.JobSeekerDTO, error) {
	user, err := srv.jobSeeker(ctx, principal)
	if err != nil {
		return nil, err
	}

	return usecase.NewJobSeekerDTO(user), nil
}

func (srv *jobSeekerService) UpdateProfile(ctx context.Context, principal *entity.Principal, input *usecase.UpdateJobSeekerProfileInput) (*usecase.JobSeekerDTO, error) {
	user, err := srv.jobSeeker(ctx, principal)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := parseDate(input.DateOfBirth)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.MobileNumber = input.MobileNumber
	if user.JobSeekerProfile == nil {
		user.JobSeekerProfile = &entity.JobSeekerProfile{UserID: user.ID}
	}
	profile := user.JobSeekerProfile
	profile.DateOfBirth = dateOfBirth
	profile.Degree = input.Degree
	profile.LinkedinID = input.LinkedinID
	profile.DesiredJobRole = input.DesiredJobRole
	profile.Skills = util.NormalizeSkills(input.Skills)
	profile.PassedOutYear = input.PassedOutYear
	profile.CurrentSalary = input.CurrentSalary
	profile.ExpectedSalary = input.ExpectedSalary

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Update(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update job seeker profile")
	}

	srv.log(ctx).Info("Job seeker profile updated", slog.Any("userID", user.ID))

	return usecase.NewJobSeekerDTO(user), nil
}

// ApplyForJob accepts any existing job regardless of its status.
func (srv *jobSeekerService) ApplyForJob(ctx context.Context, principal *entity.Principal, jobID uuid.UUID) (*usecase.ApplicationDTO, error) {
	user, err := srv.jobSeeker(ctx, principal)
	if err != nil {
		return nil, err
	}

	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrJobNotFound, "apply for job")
		}

		return nil, errors.Wrap(err, "failed to find job")
	}

	applied, err := srv.appRepo.ExistsByJobSeekerAndJob(ctx, user.ID, job.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing application")
	}
	if applied {
		return nil, errors.Wrap(domainerrors.ErrAlreadyApplied, "apply for job")
	}

	application := &entity.Application{
		JobSeekerID: user.ID,
		JobID:       job.ID,
		Status:      entity.ApplicationStatusApplied,
	}
	if err := srv.appRepo.Create(ctx, application); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateApplication):
			return nil, errors.Wrap(domainerrors.ErrAlreadyApplied, "concurrent application")
		case errors.Is(err, repository.ErrJobNotFound):
			return nil, errors.Wrap(domainerrors.ErrJobNotFound, "job removed while applying")
		default:
			return nil, errors.Wrap(err, "failed to create application")
		}
	}
	application.JobSeeker = user
	application.Job = job

	srv.log(ctx).Info("Application submitted", slog.Any("applicationID", application.ID), slog.Any("jobID", job.ID))
	srv.events.notify(ctx, constants.EventApplicationSubmitted, map[string]string{
		"application_id": application.ID.String(),
		"job_id":         job.ID.String(),
		"job_seeker_id":  user.ID.String(),
		"employer_id":    job.EmployerID.String(),
	})

	return usecase.NewApplicationDTO(application), nil
}

func (srv *jobSeekerService) GetMyApplications(ctx context.Context, principal *entity.Principal) ([]*usecase.ApplicationDTO, error) {
	user, err := srv.jobSeeker(ctx, principal)
	if err != nil {
		return nil, err
	}

	applications, err := srv.appRepo.ListByJobSeeker(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return usecase.NewApplicationDTOs(applications), nil
}
