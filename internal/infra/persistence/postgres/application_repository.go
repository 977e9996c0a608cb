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

// applicationRepository implements repository.ApplicationRepository using GORM.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{
		db: db,
	}
}

// withAssociations loads everything the application views render.
func (repo *applicationRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("JobSeeker").
		Preload("JobSeeker.JobSeekerProfile").
		Preload("Job").
		Preload("Job.Employer").
		Preload("Job.Employer.EmployerProfile")
}

func (repo *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	applicationM := fromApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Omit("JobSeeker", "Job").Create(applicationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateApplication
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrJobNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	application.ID = applicationM.ID
	application.AppliedAt = applicationM.AppliedAt
	application.UpdatedAt = applicationM.UpdatedAt

	return nil
}

func (repo *applicationRepository) UpdateStatus(ctx context.Context, application *entity.Application) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ?", application.ID).
		Updates(map[string]any{
			"status":     string(application.Status),
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update application status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	application.UpdatedAt = now

	return nil
}

func (repo *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var applicationM model.ApplicationModel

	if err := repo.withAssociations(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find application by id")
	}

	return toApplicationDomain(&applicationM), nil
}

// ExistsByJobSeekerAndJob reads from the primary; it guards the apply path.
func (repo *applicationRepository) ExistsByJobSeekerAndJob(ctx context.Context, jobSeekerID, jobID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ApplicationModel{}).
		Where("job_seeker_id = ? AND job_id = ?", jobSeekerID, jobID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check application")
	}

	return count > 0, nil
}

func (repo *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Application, error) {
	var applicationModels []*model.ApplicationModel

	if err := repo.withAssociations(repo.db.WithContext(ctx).Clauses(dbresolver.Read)).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list applications by job")
	}

	return toApplicationsDomain(applicationModels), nil
}

func (repo *applicationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*entity.Application, error) {
	var applicationModels []*model.ApplicationModel

	if err := repo.withAssociations(repo.db.WithContext(ctx).Clauses(dbresolver.Read)).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.applied_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list applications by employer")
	}

	return toApplicationsDomain(applicationModels), nil
}

func (repo *applicationRepository) ListByJobSeeker(ctx context.Context, jobSeekerID uuid.UUID) ([]*entity.Application, error) {
	var applicationModels []*model.ApplicationModel

	if err := repo.withAssociations(repo.db.WithContext(ctx).Clauses(dbresolver.Read)).
		Where("job_seeker_id = ?", jobSeekerID).
		Order("applied_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list applications by job seeker")
	}

	return toApplicationsDomain(applicationModels), nil
}
