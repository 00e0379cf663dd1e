package usecase

import (
	"context"

	"convoy/internal/domain/entity"

	"github.com/google/uuid"
)

// SettingsUsecase defines the interface for notification preference management
type SettingsUsecase interface {
	// GetNotificationSettings returns the member's current preferences,
	// defaults included when they have never saved any.
	GetNotificationSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error)

	// UpdateNotificationSettings replaces the member's preferences.
	UpdateNotificationSettings(ctx context.Context, userID uuid.UUID, settings *entity.NotificationSettings) error

	// RegisterDeliveryToken stores the device's push address. An empty token
	// clears it.
	RegisterDeliveryToken(ctx context.Context, userID uuid.UUID, token string) error
}
