package service

import (
	"context"

	"convoy/internal/domain/event"
)

// EventPublisher publishes domain events for asynchronous fan-out by the
// notification worker.
type EventPublisher interface {
	// PublishEvent publishes one domain event.
	PublishEvent(ctx context.Context, evt *event.Event) error

	// Close releases any resources held by the publisher.
	Close() error
}
