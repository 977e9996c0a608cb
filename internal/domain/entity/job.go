package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusActive   JobStatus = "ACTIVE"
	JobStatusInactive JobStatus = "INACTIVE"
	JobStatusClosed   JobStatus = "CLOSED"
	JobStatusDraft    JobStatus = "DRAFT"
)

// IsValid checks if the JobStatus is a valid value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusActive, JobStatusInactive, JobStatusClosed, JobStatusDraft:
		return true
	default:
		return false
	}
}

// Job is a posting owned by an employer. Jobs are never deleted; closing one
// moves it to JobStatusClosed.
type Job struct {
	ID             uuid.UUID
	EmployerID     uuid.UUID
	Title          string
	Description    string
	RequiredSkills []string // lowercased
	MinExperience  int
	MaxExperience  int
	MinSalary      float64
	MaxSalary      float64
	Location       string
	Status         JobStatus
	Employer       *User // optional, populated by list queries
	PostedAt       time.Time
	UpdatedAt      time.Time
}

// IsOwnedBy reports whether employerID posted the job.
func (j *Job) IsOwnedBy(employerID uuid.UUID) bool {
	return j.EmployerID == employerID
}

// IsActive reports whether the job accepts applications and shows up in search.
func (j *Job) IsActive() bool {
	return j.Status == JobStatusActive
}
