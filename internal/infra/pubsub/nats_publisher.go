package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"github.com/nats-io/nats.go"
)

const natsConnectTimeout = 5 * time.Second

// natsPublisher implements EventPublisher on a core NATS subject. Event
// attributes travel as message headers.
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and publishes every event on subject.
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	opts := []nats.Option{
		nats.Name("jobboard"),
		nats.Timeout(natsConnectTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.RetryOnFailedConnect(true),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to NATS")
	}

	return newNATSPublisher(conn, subject, logger), nil
}

func newNATSPublisher(conn *nats.Conn, subject string, logger *slog.Logger) *natsPublisher {
	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

func (p *natsPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	msg, err := p.message(event)
	if err != nil {
		return err
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrap(err, "publishing to NATS")
	}

	p.logger.DebugContext(ctx, "[NATS] Event published",
		slog.String("subject", p.subject),
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *natsPublisher) message(event *service.DomainEvent) (*nats.Msg, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	for key, value := range eventAttributes(event) {
		msg.Header.Set(key, value)
	}

	return msg, nil
}

// Close drains pending messages before closing the connection.
func (p *natsPublisher) Close() error {
	if p.conn == nil {
		return nil
	}

	return errors.WithStack(p.conn.Drain())
}
