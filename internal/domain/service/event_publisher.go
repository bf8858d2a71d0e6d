package service

import (
	"context"
	"time"
)

// Promotion event types.
const (
	EventBoostRequested = "boost.requested"
	EventBoostApproved  = "boost.approved"
	EventBoostRejected  = "boost.rejected"
)

// PromotionEvent announces a change in a product's promotional state.
type PromotionEvent struct {
	RequestID      string     `json:"request_id,omitempty"` // For distributed tracing
	Type           string     `json:"type"`
	BoostRequestID string     `json:"boost_request_id"`
	ProductID      string     `json:"product_id"`
	VendorID       string     `json:"vendor_id"`
	BoostedUntil   *time.Time `json:"boosted_until,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPromotionEvent publishes a promotion event for downstream consumers
	PublishPromotionEvent(ctx context.Context, event *PromotionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
