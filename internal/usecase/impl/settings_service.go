package impl

import (
	"context"
	"fmt"

	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/domain/repository"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type settingsService struct {
	userDir repository.UserDirectory
}

// NewSettingsService creates the notification preference manager.
func NewSettingsService(userDir repository.UserDirectory) usecase.SettingsUsecase {
	return &settingsService{userDir: userDir}
}

// GetNotificationSettings returns the member's preferences, falling back to
// defaults for a member who never saved any.
func (s *settingsService) GetNotificationSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error) {
	user, err := s.userDir.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	if user.Settings == nil {
		return entity.DefaultNotificationSettings(), nil
	}

	return user.Settings, nil
}

// UpdateNotificationSettings validates and replaces the member's preferences.
func (s *settingsService) UpdateNotificationSettings(ctx context.Context, userID uuid.UUID, settings *entity.NotificationSettings) error {
	if settings == nil {
		return domainerrors.ErrValidationFailed.WithDetails("settings body is required")
	}
	if err := validateQuietHours(settings.QuietHours); err != nil {
		return err
	}
	if settings.ProximityRadiusKm < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("proximity radius must not be negative")
	}

	if err := s.userDir.UpdateSettings(ctx, userID, settings); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}

// RegisterDeliveryToken stores the device's push address.
func (s *settingsService) RegisterDeliveryToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.userDir.UpdateDeliveryToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return fmt.Errorf("failed to update delivery token: %w", err)
	}

	return nil
}

func validateQuietHours(hours entity.QuietHours) error {
	if hours.StartHour < 0 || hours.StartHour > 23 || hours.EndHour < 0 || hours.EndHour > 23 {
		return domainerrors.ErrValidationFailed.WithDetails("quiet hours must be between 0 and 23")
	}

	return nil
}
