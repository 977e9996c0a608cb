package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of an application. Any status may be
// set from any other.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusReviewed    ApplicationStatus = "REVIEWED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
	ApplicationStatusHired       ApplicationStatus = "HIRED"
)

// IsValid checks if the ApplicationStatus is a valid value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied,
		ApplicationStatusReviewed,
		ApplicationStatusShortlisted,
		ApplicationStatusRejected,
		ApplicationStatusHired:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus accepts a status name in any case.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s)))

	return status, status.IsValid()
}

// Application links a job seeker to a job. JobSeekerID and JobID never change
// after creation and the pair is unique.
type Application struct {
	ID          uuid.UUID
	JobSeekerID uuid.UUID
	JobID       uuid.UUID
	Status      ApplicationStatus
	JobSeeker   *User // populated by list queries
	Job         *Job  // populated by list queries, with Job.Employer
	AppliedAt   time.Time
	UpdatedAt   time.Time
}
