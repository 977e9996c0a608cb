package usecase

import (
	"time"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// DateLayout is the wire format of calendar dates such as dateOfBirth.
const DateLayout = "2006-01-02"

// JobDTO is the public view of a job posting.
type JobDTO struct {
	ID             uuid.UUID        `json:"id"`
	JobTitle       string           `json:"jobTitle"`
	JobDescription string           `json:"jobDescription"`
	RequiredSkills []string         `json:"requiredSkills"`
	MinExperience  int              `json:"minExperience"`
	MaxExperience  int              `json:"maxExperience"`
	MinSalary      float64          `json:"minSalary"`
	MaxSalary      float64          `json:"maxSalary"`
	Location       string           `json:"location"`
	Status         entity.JobStatus `json:"status"`
	EmployerID     uuid.UUID        `json:"employerId"`
	EmployerName   string           `json:"employerName,omitempty"`
	CompanyName    string           `json:"companyName,omitempty"`
	PostedAt       time.Time        `json:"postedAt"`
}

// ApplicationDTO is an application with the names both sides want to see.
type ApplicationDTO struct {
	ID             uuid.UUID                `json:"id"`
	JobSeekerID    uuid.UUID                `json:"jobSeekerId"`
	JobSeekerName  string                   `json:"jobSeekerName,omitempty"`
	JobSeekerEmail string                   `json:"jobSeekerEmail,omitempty"`
	JobID          uuid.UUID                `json:"jobId"`
	JobTitle       string                   `json:"jobTitle,omitempty"`
	CompanyName    string                   `json:"companyName,omitempty"`
	Status         entity.ApplicationStatus `json:"status"`
	AppliedAt      time.Time                `json:"appliedAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

// JobSeekerDTO is a job seeker profile. It never carries the password.
type JobSeekerDTO struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	MobileNumber   string    `json:"mobileNumber"`
	DateOfBirth    string    `json:"dateOfBirth,omitempty"`
	Degree         string    `json:"degree"`
	LinkedinID     string    `json:"linkedinId,omitempty"`
	DesiredJobRole string    `json:"desiredJobRole"`
	Skills         []string  `json:"skills"`
	PassedOutYear  int       `json:"passedOutYear"`
	CurrentSalary  float64   `json:"currentSalary"`
	ExpectedSalary float64   `json:"expectedSalary"`
}

// EmployerDTO is an employer profile.
type EmployerDTO struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	Designation  string    `json:"designation"`
	CompanyName  string    `json:"companyName"`
}

// NewJobDTO maps a job; employer fields are filled when the employer is loaded.
func NewJobDTO(job *entity.Job) *JobDTO {
	dto := &JobDTO{
		ID:             job.ID,
		JobTitle:       job.Title,
		JobDescription: job.Description,
		RequiredSkills: nonNil(job.RequiredSkills),
		MinExperience:  job.MinExperience,
		MaxExperience:  job.MaxExperience,
		MinSalary:      job.MinSalary,
		MaxSalary:      job.MaxSalary,
		Location:       job.Location,
		Status:         job.Status,
		EmployerID:     job.EmployerID,
		PostedAt:       job.PostedAt,
	}
	if job.Employer != nil {
		dto.EmployerName = job.Employer.Name()
		dto.CompanyName = job.Employer.CompanyName()
	}

	return dto
}

// NewJobDTOs maps a list of jobs.
func NewJobDTOs(jobs []*entity.Job) []*JobDTO {
	dtos := make([]*JobDTO, 0, len(jobs))
	for _, job := range jobs {
		dtos = append(dtos, NewJobDTO(job))
	}

	return dtos
}

func NewApplicationDTO(application *entity.Application) *ApplicationDTO {
	dto := &ApplicationDTO{
		ID:          application.ID,
		JobSeekerID: application.JobSeekerID,
		JobID:       application.JobID,
		Status:      application.Status,
		AppliedAt:   application.AppliedAt,
		UpdatedAt:   application.UpdatedAt,
	}
	if seeker := application.JobSeeker; seeker != nil {
		dto.JobSeekerName = seeker.Name()
		dto.JobSeekerEmail = seeker.Email
	}
	if job := application.Job; job != nil {
		dto.JobTitle = job.Title
		if job.Employer != nil {
			dto.CompanyName = job.Employer.CompanyName()
		}
	}

	return dto
}

func NewApplicationDTOs(applications []*entity.Application) []*ApplicationDTO {
	dtos := make([]*ApplicationDTO, 0, len(applications))
	for _, application := range applications {
		dtos = append(dtos, NewApplicationDTO(application))
	}

	return dtos
}

func NewJobSeekerDTO(user *entity.User) *JobSeekerDTO {
	dto := &JobSeekerDTO{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		Skills:       []string{},
	}
	if profile := user.JobSeekerProfile; profile != nil {
		if !profile.DateOfBirth.IsZero() {
			dto.DateOfBirth = profile.DateOfBirth.Format(DateLayout)
		}
		dto.Degree = profile.Degree
		dto.LinkedinID = profile.LinkedinID
		dto.DesiredJobRole = profile.DesiredJobRole
		dto.Skills = nonNil(profile.Skills)
		dto.PassedOutYear = profile.PassedOutYear
		dto.CurrentSalary = profile.CurrentSalary
		dto.ExpectedSalary = profile.ExpectedSalary
	}

	return dto
}

func NewJobSeekerDTOs(users []*entity.User) []*JobSeekerDTO {
	dtos := make([]*JobSeekerDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, NewJobSeekerDTO(user))
	}

	return dtos
}

func NewEmployerDTO(user *entity.User) *EmployerDTO {
	dto := &EmployerDTO{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
	}
	if profile := user.EmployerProfile; profile != nil {
		dto.Designation = profile.Designation
		dto.CompanyName = profile.CompanyName
	}

	return dto
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
