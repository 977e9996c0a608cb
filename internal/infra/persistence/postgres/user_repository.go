// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

func (repo *userRepository) withProfiles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("JobSeekerProfile").
		Preload("EmployerProfile")
}

// FindByID retrieves a user and its profile variant.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withProfiles(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by normalized email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withProfiles(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reads from the primary so a registration that just committed is seen.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check email")
	}

	return count > 0, nil
}

// Create inserts users and the role profile in one statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.JobSeekerProfile != nil && userM.JobSeekerProfile != nil {
		user.JobSeekerProfile.UserID = userM.JobSeekerProfile.UserID
		user.JobSeekerProfile.UpdatedAt = userM.JobSeekerProfile.UpdatedAt
	}
	if user.EmployerProfile != nil && userM.EmployerProfile != nil {
		user.EmployerProfile.UserID = userM.EmployerProfile.UserID
		user.EmployerProfile.UpdatedAt = userM.EmployerProfile.UpdatedAt
	}

	return nil
}

// Update saves the editable columns of the user and its profile. Email, role
// and password are not touched.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := time.Now()
	userM := fromUserDomain(user)
	userM.UpdatedAt = now

	row := *userM
	row.JobSeekerProfile = nil
	row.EmployerProfile = nil

	db := repo.db.WithContext(ctx)
	result := db.Model(&model.UserModel{ID: user.ID}).
		Select("first_name", "last_name", "mobile_number", "updated_at").
		Updates(&row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if profileM := userM.JobSeekerProfile; profileM != nil {
		profileM.UpdatedAt = now
		if err := db.Model(&model.JobSeekerProfileModel{UserID: user.ID}).
			Select("date_of_birth", "degree", "linkedin_id", "desired_job_role", "skills",
				"passed_out_year", "current_salary", "expected_salary", "updated_at").
			Updates(profileM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update job seeker profile")
		}
		user.JobSeekerProfile.UpdatedAt = now
	}

	if profileM := userM.EmployerProfile; profileM != nil {
		profileM.UpdatedAt = now
		if err := db.Model(&model.EmployerProfileModel{UserID: user.ID}).
			Select("designation", "company_name", "updated_at").
			Updates(profileM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update employer profile")
		}
		user.EmployerProfile.UpdatedAt = now
	}

	user.UpdatedAt = now

	return nil
}

// ListJobSeekers returns every job seeker with its profile, newest first.
func (repo *userRepository) ListJobSeekers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("JobSeekerProfile").
		Where("role = ?", entity.RoleJobSeeker.String()).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list job seekers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}
