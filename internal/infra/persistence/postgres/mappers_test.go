package postgres

import (
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUserDomain_AttachesOnlyRoleProfile(t *testing.T) {
	seeker := &entity.User{
		ID:               uuid.New(),
		Email:            "seeker@example.com",
		Role:             entity.RoleJobSeeker,
		JobSeekerProfile: &entity.JobSeekerProfile{Skills: []string{"go"}},
		EmployerProfile:  &entity.EmployerProfile{CompanyName: "stray"},
	}

	userM := fromUserDomain(seeker)

	require.NotNil(t, userM)
	assert.Equal(t, "JOB_SEEKER", userM.Role)
	require.NotNil(t, userM.JobSeekerProfile)
	assert.Equal(t, pq.StringArray{"go"}, userM.JobSeekerProfile.Skills)
	assert.Nil(t, userM.EmployerProfile)
}

func TestToUserDomain_EmployerProfile(t *testing.T) {
	id := uuid.New()
	userM := &model.UserModel{
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      "EMPLOYER",
		EmployerProfile: &model.EmployerProfileModel{
			UserID:      id,
			Designation: "CTO",
			CompanyName: "Analytical Engines",
		},
	}

	user := toUserDomain(userM)

	require.NotNil(t, user)
	assert.Equal(t, entity.RoleEmployer, user.Role)
	assert.Nil(t, user.JobSeekerProfile)
	require.NotNil(t, user.EmployerProfile)
	assert.Equal(t, "Analytical Engines", user.CompanyName())
}

func TestJobMapping(t *testing.T) {
	posted := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	employerID := uuid.New()
	jobM := &model.JobModel{
		ID:             uuid.New(),
		EmployerID:     employerID,
		Title:          "Backend Engineer",
		RequiredSkills: pq.StringArray{"go", "sql"},
		MinSalary:      1000,
		MaxSalary:      2000,
		Status:         "ACTIVE",
		PostedAt:       posted,
		Employer: &model.UserModel{
			ID:              employerID,
			Role:            "EMPLOYER",
			EmployerProfile: &model.EmployerProfileModel{CompanyName: "Acme"},
		},
	}

	job := toJobDomain(jobM)

	require.NotNil(t, job)
	assert.Equal(t, entity.JobStatusActive, job.Status)
	assert.Equal(t, []string{"go", "sql"}, job.RequiredSkills)
	assert.Equal(t, posted, job.PostedAt)
	require.NotNil(t, job.Employer)
	assert.Equal(t, "Acme", job.Employer.CompanyName())

	back := fromJobDomain(job)
	assert.Nil(t, back.Employer)
	assert.Equal(t, "ACTIVE", back.Status)
}

func TestStringArrayNeverNil(t *testing.T) {
	assert.NotNil(t, stringArray(nil))
	assert.Empty(t, stringArray(nil))
	assert.Equal(t, pq.StringArray{"a"}, stringArray([]string{"a"}))
}

func TestMapperNilSafety(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
	assert.Nil(t, toJobDomain(nil))
	assert.Nil(t, fromJobDomain(nil))
	assert.Nil(t, toApplicationDomain(nil))
	assert.Nil(t, fromApplicationDomain(nil))
	assert.Empty(t, toJobsDomain(nil))
}
