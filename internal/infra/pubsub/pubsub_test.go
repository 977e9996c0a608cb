package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.DomainEvent {
	return &service.DomainEvent{
		RequestID:  "req-1",
		Type:       constants.EventApplicationSubmitted,
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Attributes: map[string]string{"job_id": "j-1", "application_id": "a-1"},
	}
}

func TestNewEventPublisher_Noop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}, {Provider: constants.PubSubProviderNoop}} {
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		})

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.Publish(context.Background(), newTestEvent()))
		assert.NoError(t, publisher.Close())
	}
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
		want string
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, "local endpoint is required"},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, "project ID is required"},
		{"nats without url", &config.PubSubConfig{Provider: constants.PubSubProviderNATS}, "nats url is required"},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}, "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.Publish(context.Background(), newTestEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventApplicationSubmitted, received.Message.Attributes[constants.EventAttributeType])
	assert.Equal(t, "j-1", received.Message.Attributes["job_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, constants.EventApplicationSubmitted, event.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.Publish(context.Background(), newTestEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNATSPublisher_Message(t *testing.T) {
	publisher := newNATSPublisher(nil, constants.DefaultEventSubject, discardLogger())

	msg, err := publisher.message(newTestEvent())
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultEventSubject, msg.Subject)
	assert.Equal(t, constants.EventApplicationSubmitted, msg.Header.Get(constants.EventAttributeType))
	assert.Equal(t, "req-1", msg.Header.Get("request_id"))
	assert.Equal(t, "a-1", msg.Header.Get("application_id"))
	assert.NoError(t, publisher.Close())
}

func TestEventAttributes_TypeWins(t *testing.T) {
	event := newTestEvent()
	event.Attributes[constants.EventAttributeType] = "spoofed"

	attributes := eventAttributes(event)

	assert.Equal(t, constants.EventApplicationSubmitted, attributes[constants.EventAttributeType])
	assert.Equal(t, "spoofed", event.Attributes[constants.EventAttributeType])
}
