package usecase

import (
	"context"
	"time"
)

// ReminderUsecase defines the interface for the daily vehicle reminder sweep.
// The schedule itself is owned by an external cron; this layer only evaluates
// and delivers.
type ReminderUsecase interface {
	// Sweep checks every enabled reminder against now and pushes a warning to
	// owners whose remaining days hit a configured threshold.
	Sweep(ctx context.Context, now time.Time) (*DeliveryReport, error)
}
