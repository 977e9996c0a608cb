// Package constants holds string values shared across layers.
package constants

// Event publisher providers accepted in pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// DefaultEventSubject is used when no topic or subject prefix is configured.
const DefaultEventSubject = "jobboard.events"

// EventAttributeType is the message attribute holding the event type.
const EventAttributeType = "event_type"

// Event types.
const (
	EventJobCreated               = "job.created"
	EventJobUpdated               = "job.updated"
	EventJobClosed                = "job.closed"
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
)
