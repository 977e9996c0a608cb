package service

import (
	"context"
	"strings"

	"jobboard/internal/domain/entity"
)

// JobSearchQuery holds the public job search parameters.
type JobSearchQuery struct {
	JobTitle string `json:"jobTitle"`
	Location string `json:"location"`
	Skills   string `json:"skills"`
}

// IsEmpty reports whether no criterion was given.
func (q JobSearchQuery) IsEmpty() bool {
	return isBlank(q.JobTitle) && isBlank(q.Location) && isBlank(q.Skills)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// JobCache caches public job listings. A miss returns (nil, false, nil);
// implementations degrade to misses when the backing store is unavailable.
type JobCache interface {
	GetActiveJobs(ctx context.Context) ([]*entity.Job, bool, error)
	SetActiveJobs(ctx context.Context, jobs []*entity.Job) error
	GetSearch(ctx context.Context, query JobSearchQuery) ([]*entity.Job, bool, error)
	SetSearch(ctx context.Context, query JobSearchQuery, jobs []*entity.Job) error

	// Invalidate drops every cached listing after a job changes.
	Invalidate(ctx context.Context) error
}
