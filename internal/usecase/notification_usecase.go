package usecase

import (
	"context"

	"convoy/internal/domain/event"
)

// NotificationUsecase defines the interface for the notification fan-out
// pipeline: per-event-kind recipient resolution, settings gating and dispatch.
type NotificationUsecase interface {
	// HandleEvent resolves the recipient set for the event, filters it
	// through each recipient's settings and dispatches the pushes
	// concurrently. The report covers every attempted send.
	HandleEvent(ctx context.Context, evt *event.Event) (*DeliveryReport, error)
}

// DeliveryReport aggregates the outcome of one fan-out.
type DeliveryReport struct {
	Delivered int
	Failed    int
	// InvalidTokens lists delivery tokens the transport rejected as
	// permanently unregistered, for cleanup by the caller.
	InvalidTokens []string
}
