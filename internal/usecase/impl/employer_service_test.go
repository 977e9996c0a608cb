package impl

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jobInput() *usecase.JobInput {
	return &usecase.JobInput{
		JobTitle:       "Backend Engineer",
		JobDescription: "Build APIs",
		RequiredSkills: []string{"Go", "PostgreSQL"},
		MinExperience:  2,
		MaxExperience:  5,
		MinSalary:      1000,
		MaxSalary:      2000,
		Location:       "Remote",
	}
}

func TestEmployerService_RoleChecks(t *testing.T) {
	t.Run("no principal", func(t *testing.T) {
		fx := newServiceFixtures(t)

		_, err := fx.employerService().GetProfile(context.Background(), nil)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("job seeker principal", func(t *testing.T) {
		fx := newServiceFixtures(t)

		_, err := fx.employerService().GetMyJobs(context.Background(), entity.NewPrincipal(newJobSeeker()))

		assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
	})

	t.Run("user vanished", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		employer := newEmployer()
		fx.userRepo.EXPECT().FindByEmail(ctx, employer.Email).Return(nil, repository.ErrUserNotFound)

		_, err := fx.employerService().GetProfile(ctx, entity.NewPrincipal(employer))

		assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
	})

	t.Run("user lookup fails", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		employer := newEmployer()
		fx.userRepo.EXPECT().FindByEmail(ctx, employer.Email).Return(nil, errors.New("connection reset by peer"))

		_, err := fx.employerService().GetProfile(ctx, entity.NewPrincipal(employer))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "ACCESS_DENIED", appErr.ErrorCode())
	})
}

func TestEmployerService_UpdateProfile(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	employer := newEmployer()
	principal := fx.principalFor(ctx, employer)

	fx.expectTx(ctx)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.FirstName == "Grace B." && user.EmployerProfile.CompanyName == "Acme Labs"
		})).
		Return(nil)
	fx.jobCache.EXPECT().Invalidate(ctx).Return(nil).Once()

	dto, err := fx.employerService().UpdateProfile(ctx, principal, &usecase.UpdateEmployerProfileInput{
		FirstName:   "Grace B.",
		LastName:    "Hopper",
		Designation: "CEO",
		CompanyName: "Acme Labs",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Labs", dto.CompanyName)
	assert.Equal(t, "CEO", dto.Designation)
}

func TestEmployerService_CreateJob(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	employer := newEmployer()
	principal := fx.principalFor(ctx, employer)
	jobID := uuid.New()

	fx.jobRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(job *entity.Job) bool {
			return job.EmployerID == employer.ID &&
				job.Status == entity.JobStatusActive &&
				assert.ObjectsAreEqual([]string{"go", "postgresql"}, job.RequiredSkills)
		})).
		Run(func(_ context.Context, job *entity.Job) {
			job.ID = jobID
			job.PostedAt = time.Now()
		}).
		Return(nil)
	fx.jobCache.EXPECT().Invalidate(ctx).Return(nil)
	fx.expectEvent(constants.EventJobCreated)

	dto, err := fx.employerService().CreateJob(ctx, principal, jobInput())

	require.NoError(t, err)
	assert.Equal(t, jobID, dto.ID)
	assert.Equal(t, entity.JobStatusActive, dto.Status)
	assert.Equal(t, "Acme", dto.CompanyName)
	assert.Equal(t, "Grace Hopper", dto.EmployerName)
}

func TestEmployerService_CreateJob_EventFailureIsIgnored(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	employer := newEmployer()
	principal := fx.principalFor(ctx, employer)

	fx.jobRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Job")).Return(nil)
	fx.jobCache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.employerService().CreateJob(ctx, principal, jobInput())

	assert.NoError(t, err)
}

func TestEmployerService_GetMyJobs_ActiveOnly(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	employer := newEmployer()
	principal := fx.principalFor(ctx, employer)

	jobs := []*entity.Job{{ID: uuid.New(), EmployerID: employer.ID, Status: entity.JobStatusActive}}
	fx.jobRepo.EXPECT().ListByEmployer(ctx, employer.ID, entity.JobStatusActive).Return(jobs, nil)

	dtos, err := fx.employerService().GetMyJobs(ctx, principal)

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Acme", dtos[0].CompanyName)
}

func TestEmployerService_OwnershipMergedIntoNotFound(t *testing.T) {
	employer := newEmployer()
	foreignJob := &entity.Job{ID: uuid.New(), EmployerID: uuid.New(), Status: entity.JobStatusActive}
	missingID := uuid.New()

	calls := map[string]func(srv *employerService, ctx context.Context, p *entity.Principal, jobID uuid.UUID) error{
		"get": func(srv *employerService, ctx context.Context, p *entity.Principal, jobID uuid.UUID) error {
			_, err := srv.GetMyJob(ctx, p, jobID)

			return err
		},
		"update": func(srv *employerService, ctx context.Context, p *entity.Principal, jobID uuid.UUID) error {
			_, err := srv.UpdateJob(ctx, p, jobID, jobInput())

			return err
		},
		"close": func(srv *employerService, ctx context.Context, p *entity.Principal, jobID uuid.UUID) error {
			return srv.CloseJob(ctx, p, jobID)
		},
		"applications": func(srv *employerService, ctx context.Context, p *entity.Principal, jobID uuid.UUID) error {
			_, err := srv.GetJobApplications(ctx, p, jobID)

			return err
		},
	}

	for name, call := range calls {
		t.Run(name+" foreign job", func(t *testing.T) {
			fx := newServiceFixtures(t)
			ctx := context.Background()
			principal := fx.principalFor(ctx, employer)
			fx.jobRepo.EXPECT().FindByID(ctx, foreignJob.ID).Return(foreignJob, nil)

			err := call(fx.employerService(), ctx, principal, foreignJob.ID)

			assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
		})

		t.Run(name+" missing job", func(t *testing.T) {
			fx := newServiceFixtures(t)
			ctx := context.Background()
			principal := fx.principalFor(ctx, employer)
			fx.jobRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrJobNotFound)

			err := call(fx.employerService(), ctx, principal, missingID)

			assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
		})
	}
}

func TestEmployerService_UpdateJob(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	employer := newEmployer()
	principal := fx.principalFor(ctx, employer)
	job := &entity.Job{ID: uuid.New(), EmployerID: employer.ID, Title: "Old", Status: entity.JobStatusActive, Employer: employer}

	input := jobInput()
	input.JobTitle = "Staff Engineer"

	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
	fx.jobRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(j *entity.Job) bool {
			return j.Title == "Staff Engineer" && j.Status == entity.JobStatusActive
		})).
		Return(nil)
	fx.jobCache.EXPECT().Invalidate(ctx).Return(nil)
	fx.expectEvent(constants.EventJobUpdated)

	dto, err := fx.employerService().UpdateJob(ctx, principal, job.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", dto.JobTitle)
	assert.Equal(t, []string{"go", "postgresql"}, dto.RequiredSkills)
}

func TestEmployerService_CloseJobKeepsApplications(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	employer := newEmployer()
	job := &entity.Job{ID: uuid.New(), EmployerID: employer.ID, Status: entity.JobStatusActive}
	seeker := newJobSeeker()
	applications := []*entity.Application{{
		ID:          uuid.New(),
		JobID:       job.ID,
		JobSeekerID: seeker.ID,
		JobSeeker:   seeker,
		Job:         job,
		Status:      entity.ApplicationStatusApplied,
	}}

	fx.userRepo.EXPECT().FindByEmail(ctx, employer.Email).Return(employer, nil)
	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
	fx.jobRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(j *entity.Job) bool { return j.Status == entity.JobStatusClosed })).
		Return(nil)
	fx.jobCache.EXPECT().Invalidate(ctx).Return(nil)
	fx.expectEvent(constants.EventJobClosed)
	fx.appRepo.EXPECT().ListByJob(ctx, job.ID).Return(applications, nil)

	srv := fx.employerService()
	principal := entity.NewPrincipal(employer)

	require.NoError(t, srv.CloseJob(ctx, principal, job.ID))

	dtos, err := srv.GetJobApplications(ctx, principal, job.ID)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Ada Lovelace", dtos[0].JobSeekerName)
}

func TestEmployerService_SearchCandidates(t *testing.T) {
	javaDev := &entity.User{
		ID:               uuid.New(),
		Role:             entity.RoleJobSeeker,
		JobSeekerProfile: &entity.JobSeekerProfile{Skills: []string{"java"}, DesiredJobRole: "engineer"},
	}
	rustDev := &entity.User{
		ID:               uuid.New(),
		Role:             entity.RoleJobSeeker,
		JobSeekerProfile: &entity.JobSeekerProfile{Skills: []string{"rust"}, DesiredJobRole: "java developer"},
	}
	designer := &entity.User{
		ID:               uuid.New(),
		Role:             entity.RoleJobSeeker,
		JobSeekerProfile: &entity.JobSeekerProfile{Skills: []string{"figma"}, DesiredJobRole: "designer"},
	}
	candidates := []*entity.User{javaDev, rustDev, designer}

	tests := []struct {
		name  string
		input *usecase.CandidateSearchInput
		want  []uuid.UUID
	}{
		{
			name:  "no filters returns everyone",
			input: &usecase.CandidateSearchInput{Skills: " ", JobRole: ""},
			want:  []uuid.UUID{javaDev.ID, rustDev.ID, designer.ID},
		},
		{
			name:  "skills also match the desired role",
			input: &usecase.CandidateSearchInput{Skills: "java,python"},
			want:  []uuid.UUID{javaDev.ID, rustDev.ID},
		},
		{
			name:  "role filter",
			input: &usecase.CandidateSearchInput{JobRole: "Designer"},
			want:  []uuid.UUID{designer.ID},
		},
		{
			name:  "skill or role",
			input: &usecase.CandidateSearchInput{Skills: "rust", JobRole: "design"},
			want:  []uuid.UUID{rustDev.ID, designer.ID},
		},
		{
			name:  "no match",
			input: &usecase.CandidateSearchInput{Skills: "cobol"},
			want:  []uuid.UUID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newServiceFixtures(t)
			ctx := context.Background()
			principal := fx.principalFor(ctx, newEmployerWithID(uuid.New()))
			fx.userRepo.EXPECT().ListJobSeekers(ctx).Return(candidates, nil)

			dtos, err := fx.employerService().SearchCandidates(ctx, principal, tt.input)

			require.NoError(t, err)
			got := make([]uuid.UUID, 0, len(dtos))
			for _, dto := range dtos {
				got = append(got, dto.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmployerService_UpdateApplicationStatus(t *testing.T) {
	employer := newEmployer()
	seeker := newJobSeeker()
	job := &entity.Job{ID: uuid.New(), EmployerID: employer.ID, Title: "Backend Engineer", Employer: employer}

	t.Run("hired", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		principal := fx.principalFor(ctx, employer)
		application := &entity.Application{
			ID:          uuid.New(),
			JobID:       job.ID,
			JobSeekerID: seeker.ID,
			JobSeeker:   seeker,
			Job:         job,
			Status:      entity.ApplicationStatusApplied,
		}

		fx.appRepo.EXPECT().FindByID(ctx, application.ID).Return(application, nil)
		fx.appRepo.EXPECT().
			UpdateStatus(ctx, mock.MatchedBy(func(a *entity.Application) bool {
				return a.Status == entity.ApplicationStatusHired
			})).
			Return(nil)
		fx.expectEvent(constants.EventApplicationStatusChanged)

		dto, err := fx.employerService().UpdateApplicationStatus(ctx, principal, application.ID, "hired")

		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationStatusHired, dto.Status)
		assert.Equal(t, "Acme", dto.CompanyName)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		principal := fx.principalFor(ctx, employer)

		_, err := fx.employerService().UpdateApplicationStatus(ctx, principal, uuid.New(), "ARCHIVED")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidApplicationStatus))
	})

	t.Run("foreign application", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		principal := fx.principalFor(ctx, employer)
		foreign := &entity.Application{
			ID:  uuid.New(),
			Job: &entity.Job{ID: uuid.New(), EmployerID: uuid.New()},
		}
		fx.appRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

		_, err := fx.employerService().UpdateApplicationStatus(ctx, principal, foreign.ID, "REVIEWED")

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("missing application", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		principal := fx.principalFor(ctx, employer)
		missing := uuid.New()
		fx.appRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrApplicationNotFound)

		_, err := fx.employerService().UpdateApplicationStatus(ctx, principal, missing, "REVIEWED")

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestEmployerService_GetAllMyJobApplications(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	employer := newEmployer()
	principal := fx.principalFor(ctx, employer)

	fx.appRepo.EXPECT().ListByEmployer(ctx, employer.ID).Return([]*entity.Application{}, nil)

	dtos, err := fx.employerService().GetAllMyJobApplications(ctx, principal)

	require.NoError(t, err)
	assert.Empty(t, dtos)
	assert.NotNil(t, dtos)
}

func newEmployerWithID(id uuid.UUID) *entity.User {
	employer := newEmployer()
	employer.ID = id
	employer.EmployerProfile.UserID = id

	return employer
}
