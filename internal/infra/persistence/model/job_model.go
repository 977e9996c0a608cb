package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobModel mirrors the 'jobs' table.
type JobModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EmployerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title          string         `gorm:"column:job_title;type:varchar(255);not null"`
	Description    string         `gorm:"column:job_description;type:varchar(1000)"`
	RequiredSkills pq.StringArray `gorm:"type:text[]"`
	MinExperience  int
	MaxExperience  int
	MinSalary      float64   `gorm:"type:numeric(12,2)"`
	MaxSalary      float64   `gorm:"type:numeric(12,2)"`
	Location       string    `gorm:"type:varchar(255)"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	PostedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time

	Employer *UserModel `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
