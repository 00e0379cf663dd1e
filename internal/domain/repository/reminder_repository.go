package repository

import (
	"context"

	"convoy/internal/domain/entity"
)

// ReminderRepository persists per-vehicle deadline reminders for the daily sweep.
type ReminderRepository interface {
	// ListEnabled returns every enabled reminder, across all members.
	ListEnabled(ctx context.Context) ([]*entity.VehicleReminder, error)
}
