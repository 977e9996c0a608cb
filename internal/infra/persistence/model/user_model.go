package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	MobileNumber string    `gorm:"type:varchar(32)"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	JobSeekerProfile *JobSeekerProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	EmployerProfile  *EmployerProfileModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// JobSeekerProfileModel mirrors the 'job_seeker_profiles' side table keyed by users.id.
type JobSeekerProfileModel struct {
	UserID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DateOfBirth    time.Time      `gorm:"type:date"`
	Degree         string         `gorm:"type:varchar(100)"`
	LinkedinID     string         `gorm:"column:linkedin_id;type:varchar(255)"`
	DesiredJobRole string         `gorm:"type:varchar(100)"`
	Skills         pq.StringArray `gorm:"type:text[]"`
	PassedOutYear  int
	CurrentSalary  float64 `gorm:"type:numeric(12,2)"`
	ExpectedSalary float64 `gorm:"type:numeric(12,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobSeekerProfileModel) TableName() string {
	return "job_seeker_profiles"
}

// EmployerProfileModel mirrors the 'employer_profiles' side table keyed by users.id.
type EmployerProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Designation string    `gorm:"type:varchar(100)"`
	CompanyName string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployerProfileModel) TableName() string {
	return "employer_profiles"
}
