// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"
	"jobboard/internal/usecase"
	"jobboard/internal/util"
)

// requireRole resolves the caller through the auth usecase and checks it
// holds role. A missing principal is unauthenticated; the wrong role or a
// user that cannot be loaded is denied.
func requireRole(ctx context.Context, authUC usecase.AuthUsecase, principal *entity.Principal, role entity.Role) (*entity.User, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if !principal.HasRole(role) {
		return nil, errors.Wrapf(domainerrors.ErrAccessDenied, "%s role required", role)
	}

	user, ok := authUC.GetCurrentUser(ctx, principal)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrAccessDenied, "current user unavailable")
	}
	if user.Role != role {
		return nil, errors.Wrapf(domainerrors.ErrAccessDenied, "%s role required", role)
	}

	return user, nil
}

// parseDate accepts an empty string as the zero date.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(usecase.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("dateOfBirth must be YYYY-MM-DD"), err.Error())
	}

	return date, nil
}

// eventNotifier publishes domain events on a best-effort basis.
type eventNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (n eventNotifier) notify(ctx context.Context, eventType string, attributes map[string]string) {
	if n.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}

// invalidateJobs drops cached listings; a failure only leaves stale entries until the TTL.
func invalidateJobs(ctx context.Context, cache service.JobCache, logger *slog.Logger) {
	if cache == nil {
		return
	}

	if err := cache.Invalidate(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to invalidate job cache", slog.Any("error", err))
	}
}

// matchesJobQuery is the public search predicate: title OR location OR any
// skill term, each case-insensitive. Blank criteria never match.
func matchesJobQuery(job *entity.Job, query service.JobSearchQuery) bool {
	if util.ContainsFold(job.Title, query.JobTitle) || util.ContainsFold(job.Location, query.Location) {
		return true
	}

	for _, term := range util.SplitTerms(query.Skills) {
		for _, skill := range job.RequiredSkills {
			if util.ContainsFold(skill, term) {
				return true
			}
		}
	}

	return false
}

// matchesCandidate reports whether any skill term overlaps a candidate skill
// or any role term overlaps the desired job role.
func matchesCandidate(user *entity.User, skillTerms, roleTerms []string) bool {
	profile := user.JobSeekerProfile
	if profile == nil {
		return false
	}

	for _, term := range skillTerms {
		for _, skill := range profile.Skills {
			if util.OverlapsFold(skill, term) {
				return true
			}
		}
	}

	for _, term := range roleTerms {
		if util.OverlapsFold(profile.DesiredJobRole, term) {
			return true
		}
	}

	return false
}
