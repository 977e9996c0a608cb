package impl

import (
	"context"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeJobs() []*entity.Job {
	return []*entity.Job{
		{
			ID:             uuid.New(),
			Title:          "Backend Engineer",
			Location:       "Remote",
			RequiredSkills: []string{"go"},
			Status:         entity.JobStatusActive,
		},
		{
			ID:             uuid.New(),
			Title:          "Frontend Developer",
			Location:       "Paris",
			RequiredSkills: []string{"typescript", "react"},
			Status:         entity.JobStatusActive,
		},
	}
}

func TestJobService_GetAllActiveJobs_CacheHit(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	jobs := activeJobs()

	fx.jobCache.EXPECT().GetActiveJobs(ctx).Return(jobs, true, nil)

	dtos, err := fx.jobService().GetAllActiveJobs(ctx)

	require.NoError(t, err)
	assert.Len(t, dtos, 2)
	fx.jobRepo.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything)
}

func TestJobService_GetAllActiveJobs_CacheMiss(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	jobs := activeJobs()

	fx.jobCache.EXPECT().GetActiveJobs(ctx).Return(nil, false, nil)
	fx.jobRepo.EXPECT().ListByStatus(ctx, entity.JobStatusActive).Return(jobs, nil)
	fx.jobCache.EXPECT().SetActiveJobs(ctx, jobs).Return(errors.New("redis down"))

	dtos, err := fx.jobService().GetAllActiveJobs(ctx)

	require.NoError(t, err)
	assert.Len(t, dtos, 2)
}

func TestJobService_SearchJobs(t *testing.T) {
	jobs := activeJobs()

	tests := []struct {
		name  string
		query service.JobSearchQuery
		want  []string
	}{
		{name: "title", query: service.JobSearchQuery{JobTitle: "backend"}, want: []string{"Backend Engineer"}},
		{name: "location or skill", query: service.JobSearchQuery{Location: "paris", Skills: "go"}, want: []string{"Backend Engineer", "Frontend Developer"}},
		{name: "skill substring", query: service.JobSearchQuery{Skills: "Type"}, want: []string{"Frontend Developer"}},
		{name: "blank params never match", query: service.JobSearchQuery{JobTitle: "rust", Location: " "}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newServiceFixtures(t)
			ctx := context.Background()

			fx.jobCache.EXPECT().GetSearch(ctx, tt.query).Return(nil, false, nil)
			fx.jobRepo.EXPECT().ListByStatus(ctx, entity.JobStatusActive).Return(jobs, nil)
			fx.jobCache.EXPECT().SetSearch(ctx, tt.query, mock.Anything).Return(nil)

			dtos, err := fx.jobService().SearchJobs(ctx, tt.query)

			require.NoError(t, err)
			titles := make([]string, 0, len(dtos))
			for _, dto := range dtos {
				titles = append(titles, dto.JobTitle)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestJobService_SearchJobs_AllBlankListsEverything(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()

	fx.jobCache.EXPECT().GetActiveJobs(ctx).Return(activeJobs(), true, nil)

	dtos, err := fx.jobService().SearchJobs(ctx, service.JobSearchQuery{JobTitle: "  "})

	require.NoError(t, err)
	assert.Len(t, dtos, 2)
}

func TestJobService_GetJob(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		job := activeJobs()[0]
		fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)

		dto, err := fx.jobService().GetJob(ctx, job.ID)

		require.NoError(t, err)
		assert.Equal(t, job.ID, dto.ID)
	})

	t.Run("closed is hidden", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		job := activeJobs()[0]
		job.Status = entity.JobStatusClosed
		fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)

		_, err := fx.jobService().GetJob(ctx, job.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
	})

	t.Run("missing", func(t *testing.T) {
		fx := newServiceFixtures(t)
		ctx := context.Background()
		missing := uuid.New()
		fx.jobRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrJobNotFound)

		_, err := fx.jobService().GetJob(ctx, missing)

		assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
	})
}

func TestJobService_JobQRCode(t *testing.T) {
	fx := newServiceFixtures(t)
	ctx := context.Background()
	job := activeJobs()[0]
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
	fx.qrCode.EXPECT().GenerateJobQR(job.ID).Return(png, nil)

	got, err := fx.jobService().JobQRCode(ctx, job.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
