package postgres

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// jobRepository implements repository.JobRepository using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Omit("Employer").Create(jobM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.PostedAt = jobM.PostedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// Update writes the editable columns. Owner and PostedAt never change.
func (repo *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)
	jobM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{ID: job.ID}).
		Select("job_title", "job_description", "required_skills", "min_experience", "max_experience",
			"min_salary", "max_salary", "location", "status", "updated_at").
		Updates(jobM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).
		Preload("Employer").
		Preload("Employer.EmployerProfile").
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find job by id")
	}

	return toJobDomain(&jobM), nil
}

func (repo *jobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID, status entity.JobStatus) ([]*entity.Job, error) {
	var jobModels []*model.JobModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Employer").
		Preload("Employer.EmployerProfile").
		Where("employer_id = ? AND status = ?", employerID, string(status)).
		Order("posted_at DESC").
		Find(&jobModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list employer jobs")
	}

	return toJobsDomain(jobModels), nil
}

func (repo *jobRepository) ListByStatus(ctx context.Context, status entity.JobStatus) ([]*entity.Job, error) {
	var jobModels []*model.JobModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Employer").
		Preload("Employer.EmployerProfile").
		Where("status = ?", string(status)).
		Order("posted_at DESC").
		Find(&jobModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list jobs by status")
	}

	return toJobsDomain(jobModels), nil
}
