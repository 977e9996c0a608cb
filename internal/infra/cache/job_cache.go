// Package cache keeps public job listings in redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/lifecycle"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix       = "jobs:"
	activeJobsKey   = keyPrefix + "active"
	searchKeyPrefix = keyPrefix + "search:"
	defaultTTL      = 60 * time.Second
)

type redisJobCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger

	warnedUnavailable atomic.Bool
}

// Params holds dependencies for the job cache, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewJobCache connects to redis when configured. Without a redis section every
// lookup is a miss and writes are dropped.
func NewJobCache(params Params) service.JobCache {
	cfg := params.Config.Redis
	if cfg == nil || strings.TrimSpace(cfg.Addr) == "" {
		params.Logger.Info("Redis not configured, job cache disabled")

		return newRedisJobCache(nil, 0, params.Logger)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cache := newRedisJobCache(client, cfg.TTL, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable redis only disables caching.
			if err := client.Ping(ctx).Err(); err != nil {
				cache.warnUnavailableOnce(err)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return cache
}

func newRedisJobCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *redisJobCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisJobCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *redisJobCache) GetActiveJobs(ctx context.Context) ([]*entity.Job, bool, error) {
	return c.get(ctx, activeJobsKey)
}

func (c *redisJobCache) SetActiveJobs(ctx context.Context, jobs []*entity.Job) error {
	return c.set(ctx, activeJobsKey, jobs)
}

func (c *redisJobCache) GetSearch(ctx context.Context, query service.JobSearchQuery) ([]*entity.Job, bool, error) {
	return c.get(ctx, searchKey(query))
}

func (c *redisJobCache) SetSearch(ctx context.Context, query service.JobSearchQuery, jobs []*entity.Job) error {
	return c.set(ctx, searchKey(query), jobs)
}

// Invalidate removes the active list and every cached search.
func (c *redisJobCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, activeJobsKey).Err(); err != nil {
		c.warnUnavailableOnce(err)

		return errors.Wrap(err, "delete active jobs key")
	}

	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrapf(err, "delete %s", iter.Val())
		}
	}

	return errors.WithStack(iter.Err())
}

func (c *redisJobCache) get(ctx context.Context, key string) ([]*entity.Job, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warnUnavailableOnce(err)
		}

		return nil, false, nil
	}

	jobs, err := decodeJobs(payload)
	if err != nil {
		return nil, false, err
	}

	return jobs, true, nil
}

func (c *redisJobCache) set(ctx context.Context, key string, jobs []*entity.Job) error {
	if c.client == nil {
		return nil
	}

	payload, err := encodeJobs(jobs)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.warnUnavailableOnce(err)

		return errors.Wrapf(err, "set %s", key)
	}

	return nil
}

func (c *redisJobCache) warnUnavailableOnce(err error) {
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		c.logger.Warn("Redis unavailable, bypassing job cache", slog.Any("error", err))
	}
}

// searchKey hashes the normalized query so arbitrary input stays a short key.
func searchKey(query service.JobSearchQuery) string {
	normalized := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(query.JobTitle)),
		strings.ToLower(strings.TrimSpace(query.Location)),
		strings.ToLower(strings.TrimSpace(query.Skills)),
	}, "\x1f")
	sum := sha256.Sum256([]byte(normalized))

	return searchKeyPrefix + hex.EncodeToString(sum[:])
}

// cachedJob is the stored form of a job. Only the employer's public fields are kept.
type cachedJob struct {
	ID             uuid.UUID `json:"id"`
	EmployerID     uuid.UUID `json:"employerId"`
	EmployerFirst  string    `json:"employerFirstName"`
	EmployerLast   string    `json:"employerLastName"`
	CompanyName    string    `json:"companyName"`
	Title          string    `json:"jobTitle"`
	Description    string    `json:"jobDescription"`
	RequiredSkills []string  `json:"requiredSkills"`
	MinExperience  int       `json:"minExperience"`
	MaxExperience  int       `json:"maxExperience"`
	MinSalary      float64   `json:"minSalary"`
	MaxSalary      float64   `json:"maxSalary"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	PostedAt       time.Time `json:"postedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func encodeJobs(jobs []*entity.Job) ([]byte, error) {
	cached := make([]cachedJob, 0, len(jobs))
	for _, job := range jobs {
		entry := cachedJob{
			ID:             job.ID,
			EmployerID:     job.EmployerID,
			Title:          job.Title,
			Description:    job.Description,
			RequiredSkills: job.RequiredSkills,
			MinExperience:  job.MinExperience,
			MaxExperience:  job.MaxExperience,
			MinSalary:      job.MinSalary,
			MaxSalary:      job.MaxSalary,
			Location:       job.Location,
			Status:         string(job.Status),
			PostedAt:       job.PostedAt,
			UpdatedAt:      job.UpdatedAt,
		}
		if job.Employer != nil {
			entry.EmployerFirst = job.Employer.FirstName
			entry.EmployerLast = job.Employer.LastName
			entry.CompanyName = job.Employer.CompanyName()
		}
		cached = append(cached, entry)
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return nil, errors.Wrap(err, "encode cached jobs")
	}

	return payload, nil
}

func decodeJobs(payload []byte) ([]*entity.Job, error) {
	var cached []cachedJob
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, errors.Wrap(err, "decode cached jobs")
	}

	jobs := make([]*entity.Job, 0, len(cached))
	for _, entry := range cached {
		employer := &entity.User{
			ID:              entry.EmployerID,
			FirstName:       entry.EmployerFirst,
			LastName:        entry.EmployerLast,
			Role:            entity.RoleEmployer,
			EmployerProfile: &entity.EmployerProfile{UserID: entry.EmployerID, CompanyName: entry.CompanyName},
		}
		jobs = append(jobs, &entity.Job{
			ID:             entry.ID,
			EmployerID:     entry.EmployerID,
			Title:          entry.Title,
			Description:    entry.Description,
			RequiredSkills: entry.RequiredSkills,
			MinExperience:  entry.MinExperience,
			MaxExperience:  entry.MaxExperience,
			MinSalary:      entry.MinSalary,
			MaxSalary:      entry.MaxSalary,
			Location:       entry.Location,
			Status:         entity.JobStatus(entry.Status),
			Employer:       employer,
			PostedAt:       entry.PostedAt,
			UpdatedAt:      entry.UpdatedAt,
		})
	}

	return jobs, nil
}
