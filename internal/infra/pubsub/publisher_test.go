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

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.PromotionEvent {
	until := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	return &service.PromotionEvent{
		RequestID:      "req-1",
		Type:           service.EventBoostApproved,
		BoostRequestID: "br-1",
		ProductID:      "p-1",
		VendorID:       "v-1",
		BoostedUntil:   &until,
		OccurredAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received pushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishPromotionEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "br-1:boost.approved", received.Message.MessageID)
	assert.Equal(t, "boost.approved", received.Message.Attributes["type"])
	assert.Equal(t, "p-1", received.Message.Attributes["product_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.PromotionEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "v-1", event.VendorID)
	require.NotNil(t, event.BoostedUntil)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishPromotionEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_WritesKeyedMessage(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, testLogger())

	require.NoError(t, publisher.PublishPromotionEvent(context.Background(), testEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "p-1", string(msg.Key))

	headers := make(map[string]string)
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "boost.approved", headers["type"])
	assert.Equal(t, "req-1", headers["request_id"])

	var event service.PromotionEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "br-1", event.BoostRequestID)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	publisher := newKafkaPublisher(writer, testLogger())

	err := publisher.PublishPromotionEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leader not available")
}

func TestNewPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "not configured",
			cfg:  &config.Config{},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, p)
				assert.NoError(t, p.PublishPromotionEvent(context.Background(), testEvent()))
			},
		},
		{
			name: "local",
			cfg:  &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name: "kafka",
			cfg: &config.Config{
				PubSub: &config.PubSubConfig{Provider: "kafka"},
				Kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "promotions"},
			},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &kafkaPublisher{}, p)
				assert.NoError(t, p.Close())
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "google", TopicID: "t"}},
			wantErr: "project ID is required",
		},
		{
			name:    "kafka without brokers",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			wantErr: "kafka brokers are required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "carrier-pigeon"}},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPublisher(context.Background(), tt.cfg, testLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}
