package pubsub

import (
	"context"
	"log/slog"

	"jobboard/config"
	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops events when no broker is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	topic := cfg.TopicID
	if topic == "" {
		topic = constants.DefaultEventSubject
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", topic),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, topic, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderNATS:
		if cfg.NATSURL == "" {
			return nil, errors.New("nats url is required for nats provider")
		}
		logger.Info("Using NATS publisher",
			slog.String("url", cfg.NATSURL),
			slog.String("subject", topic),
		)

		publisher, err = NewNATSPublisher(cfg.NATSURL, topic, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes builds the broker attributes shared by every provider.
func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := make(map[string]string, len(event.Attributes)+2)
	for key, value := range event.Attributes {
		attributes[key] = value
	}
	attributes[constants.EventAttributeType] = event.Type
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
