package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 5 * time.Second
	localPushSubscription = "projects/local/subscriptions/promotion-events"
)

// localHTTPPublisher delivers events to an HTTP endpoint in the Pub/Sub push
// format so push subscribers can be developed without a Google project.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// pushEnvelope is the body Pub/Sub sends to push endpoints.
type pushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher posting to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func newPushEnvelope(event *service.PromotionEvent) (*pushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	env := &pushEnvelope{Subscription: localPushSubscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = eventAttributes(event)
	// Stable per event so receivers can deduplicate retries.
	env.Message.MessageID = event.BoostRequestID + ":" + event.Type
	env.Message.PublishTime = event.OccurredAt.UTC().Format(time.RFC3339Nano)

	return env, nil
}

// PublishPromotionEvent posts the event and treats any non-2xx answer as a failure.
func (p *localHTTPPublisher) PublishPromotionEvent(ctx context.Context, event *service.PromotionEvent) error {
	env, err := newPushEnvelope(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(env)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s", event.Type)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	loggerFor(ctx, p.logger).Debug("Promotion event published",
		slog.String("transport", "local"),
		slog.String("endpoint", p.endpoint),
		slog.String("type", event.Type),
		slog.String("boost_request_id", event.BoostRequestID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
