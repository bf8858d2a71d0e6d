// Package pubsub publishes promotion events to the configured message transport.
package pubsub

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPromotionEvent(ctx context.Context, event *service.PromotionEvent) error {
	loggerFor(ctx, p.logger).Debug("Event publishing disabled, skipping",
		slog.String("type", event.Type),
		slog.String("boost_request_id", event.BoostRequestID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// loggerFor prefers the request-scoped logger so publish logs carry request_id.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// eventAttributes returns the message attributes used for filtering and tracing.
func eventAttributes(event *service.PromotionEvent) map[string]string {
	attributes := map[string]string{
		"type":             event.Type,
		"boost_request_id": event.BoostRequestID,
		"product_id":       event.ProductID,
		"vendor_id":        event.VendorID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
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
	publisher, err := newPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	pubsubCfg := cfg.PubSub

	if pubsubCfg == nil || pubsubCfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch pubsubCfg.Provider {
	case constants.PubSubProviderLocal:
		if pubsubCfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", pubsubCfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(pubsubCfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if pubsubCfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if pubsubCfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", pubsubCfg.ProjectID),
			slog.String("topic_id", pubsubCfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, pubsubCfg.ProjectID, pubsubCfg.TopicID, logger)

	case constants.PubSubProviderKafka:
		if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 {
			return nil, errors.New("kafka brokers are required for kafka provider")
		}
		if cfg.Kafka.Topic == "" {
			return nil, errors.New("kafka topic is required for kafka provider")
		}
		logger.Info("Using Kafka publisher",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.Topic),
		)

		return NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger), nil

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", pubsubCfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
