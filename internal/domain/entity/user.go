// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account. Exactly one of JobSeekerProfile or EmployerProfile is
// set, selected by Role.
type User struct {
	ID               uuid.UUID
	FirstName        string
	LastName         string
	Email            string // lowercased and trimmed
	PasswordHash     string
	MobileNumber     string
	Role             Role
	JobSeekerProfile *JobSeekerProfile // nil unless Role is RoleJobSeeker
	EmployerProfile  *EmployerProfile  // nil unless Role is RoleEmployer
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// JobSeekerProfile holds data specific to the job seeker role.
type JobSeekerProfile struct {
	UserID         uuid.UUID
	DateOfBirth    time.Time
	Degree         string
	LinkedinID     string
	DesiredJobRole string
	Skills         []string // lowercased
	PassedOutYear  int
	CurrentSalary  float64
	ExpectedSalary float64
	UpdatedAt      time.Time
}

// EmployerProfile holds data specific to the employer role.
type EmployerProfile struct {
	UserID      uuid.UUID
	Designation string
	CompanyName string
	UpdatedAt   time.Time
}

// Name returns the display name.
func (u *User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsJobSeeker reports whether the user is a job seeker with a loaded profile.
func (u *User) IsJobSeeker() bool {
	return u.Role == RoleJobSeeker && u.JobSeekerProfile != nil
}

// IsEmployer reports whether the user is an employer with a loaded profile.
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer && u.EmployerProfile != nil
}

// CompanyName returns the employer's company, or "" for other roles.
func (u *User) CompanyName() string {
	if u.EmployerProfile == nil {
		return ""
	}

	return u.EmployerProfile.CompanyName
}
