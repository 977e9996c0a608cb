package postgres

import (
	"jobboard/internal/domain/entity"
	"jobboard/internal/infra/persistence/model"

	"github.com/lib/pq"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		MobileNumber:     data.MobileNumber,
		Role:             entity.Role(data.Role),
		JobSeekerProfile: toJobSeekerProfileDomain(data.JobSeekerProfile),
		EmployerProfile:  toEmployerProfileDomain(data.EmployerProfile),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUserDomain only attaches the profile that matches the role, so the
// discriminator and the stored variant cannot disagree.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		MobileNumber: data.MobileNumber,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	switch data.Role {
	case entity.RoleJobSeeker:
		userM.JobSeekerProfile = fromJobSeekerProfileDomain(data.JobSeekerProfile)
	case entity.RoleEmployer:
		userM.EmployerProfile = fromEmployerProfileDomain(data.EmployerProfile)
	}

	return userM
}

func toJobSeekerProfileDomain(data *model.JobSeekerProfileModel) *entity.JobSeekerProfile {
	if data == nil {
		return nil
	}

	return &entity.JobSeekerProfile{
		UserID:         data.UserID,
		DateOfBirth:    data.DateOfBirth,
		Degree:         data.Degree,
		LinkedinID:     data.LinkedinID,
		DesiredJobRole: data.DesiredJobRole,
		Skills:         []string(data.Skills),
		PassedOutYear:  data.PassedOutYear,
		CurrentSalary:  data.CurrentSalary,
		ExpectedSalary: data.ExpectedSalary,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromJobSeekerProfileDomain(data *entity.JobSeekerProfile) *model.JobSeekerProfileModel {
	if data == nil {
		return nil
	}

	return &model.JobSeekerProfileModel{
		UserID:         data.UserID,
		DateOfBirth:    data.DateOfBirth,
		Degree:         data.Degree,
		LinkedinID:     data.LinkedinID,
		DesiredJobRole: data.DesiredJobRole,
		Skills:         stringArray(data.Skills),
		PassedOutYear:  data.PassedOutYear,
		CurrentSalary:  data.CurrentSalary,
		ExpectedSalary: data.ExpectedSalary,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toEmployerProfileDomain(data *model.EmployerProfileModel) *entity.EmployerProfile {
	if data == nil {
		return nil
	}

	return &entity.EmployerProfile{
		UserID:      data.UserID,
		Designation: data.Designation,
		CompanyName: data.CompanyName,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEmployerProfileDomain(data *entity.EmployerProfile) *model.EmployerProfileModel {
	if data == nil {
		return nil
	}

	return &model.EmployerProfileModel{
		UserID:      data.UserID,
		Designation: data.Designation,
		CompanyName: data.CompanyName,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:             data.ID,
		EmployerID:     data.EmployerID,
		Title:          data.Title,
		Description:    data.Description,
		RequiredSkills: []string(data.RequiredSkills),
		MinExperience:  data.MinExperience,
		MaxExperience:  data.MaxExperience,
		MinSalary:      data.MinSalary,
		MaxSalary:      data.MaxSalary,
		Location:       data.Location,
		Status:         entity.JobStatus(data.Status),
		Employer:       toUserDomain(data.Employer),
		PostedAt:       data.PostedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromJobDomain leaves the Employer association out; jobs never write users.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:             data.ID,
		EmployerID:     data.EmployerID,
		Title:          data.Title,
		Description:    data.Description,
		RequiredSkills: stringArray(data.RequiredSkills),
		MinExperience:  data.MinExperience,
		MaxExperience:  data.MaxExperience,
		MinSalary:      data.MinSalary,
		MaxSalary:      data.MaxSalary,
		Location:       data.Location,
		Status:         string(data.Status),
		PostedAt:       data.PostedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:          data.ID,
		JobSeekerID: data.JobSeekerID,
		JobID:       data.JobID,
		Status:      entity.ApplicationStatus(data.Status),
		JobSeeker:   toUserDomain(data.JobSeeker),
		Job:         toJobDomain(data.Job),
		AppliedAt:   data.AppliedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.Application) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:          data.ID,
		JobSeekerID: data.JobSeekerID,
		JobID:       data.JobID,
		Status:      string(data.Status),
		AppliedAt:   data.AppliedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// stringArray never returns nil so text[] columns store '{}' rather than NULL.
func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(values)
}

func toJobsDomain(models []*model.JobModel) []*entity.Job {
	jobs := make([]*entity.Job, 0, len(models))
	for _, jobM := range models {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs
}

func toApplicationsDomain(models []*model.ApplicationModel) []*entity.Application {
	applications := make([]*entity.Application, 0, len(models))
	for _, applicationM := range models {
		applications = append(applications, toApplicationDomain(applicationM))
	}

	return applications
}
