package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationModel mirrors the 'applications' table. (job_seeker_id, job_id) is unique.
type ApplicationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	JobSeekerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_applications_seeker_job"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_applications_seeker_job;index"`
	Status      string    `gorm:"type:varchar(20);not null"`
	AppliedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time

	JobSeeker *UserModel `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE"`
	Job       *JobModel  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}
