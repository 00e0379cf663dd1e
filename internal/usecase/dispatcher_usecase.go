package usecase

import (
	"context"

	"convoy/internal/domain/service"

	"github.com/google/uuid"
)

// Send is one addressed push within a fan-out.
type Send struct {
	UserID  uuid.UUID
	Token   string
	Title   string
	Body    string
	Data    map[string]string
	Channel service.Channel
}

// DispatcherUsecase defines the interface for concurrent push delivery with
// per-send failure isolation.
type DispatcherUsecase interface {
	// Dispatch issues every send concurrently and joins them before
	// returning. One bad token never blocks the rest of the batch.
	Dispatch(ctx context.Context, sends []Send) *DeliveryReport
}
