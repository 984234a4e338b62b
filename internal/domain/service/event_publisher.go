package service

import (
	"context"
	"time"
)

// OrderTransitionEvent describes one status change of an order. It is
// published after every successful transition; consumers receiving it with
// at-least-once semantics must tolerate duplicates.
type OrderTransitionEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string    `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order transition events
// to a message queue.
type EventPublisher interface {
	// PublishTransitionEvent publishes a transition event for async consumers.
	PublishTransitionEvent(ctx context.Context, event *OrderTransitionEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
