package service

import (
	"context"
	"time"
)

// DomainEvent is a notification about a job or application change.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       string            `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes"`
}

// EventPublisher sends domain events to a message broker.
type EventPublisher interface {
	// Publish delivers one event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
