package impl

import (
	"context"
	"testing"

	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/domain/repository"
	mockRepo "convoy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Get_DefaultsWhenNeverSaved(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	ctx := context.Background()
	userID := uuid.New()

	mockDir.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	settings, err := service.GetNotificationSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultNotificationSettings(), settings)
}

func TestSettingsService_Get_ReturnsSaved(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	ctx := context.Background()
	userID := uuid.New()

	saved := entity.DefaultNotificationSettings()
	saved.SOSAlerts = false

	mockDir.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Settings: saved}, nil)

	settings, err := service.GetNotificationSettings(ctx, userID)
	require.NoError(t, err)
	assert.False(t, settings.SOSAlerts)
}

func TestSettingsService_Get_UnknownMember(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	ctx := context.Background()
	userID := uuid.New()

	mockDir.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.GetNotificationSettings(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSettingsService_Update(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	ctx := context.Background()
	userID := uuid.New()
	settings := entity.DefaultNotificationSettings()

	mockDir.EXPECT().
		UpdateSettings(ctx, userID, settings).
		Return(nil)

	require.NoError(t, service.UpdateNotificationSettings(ctx, userID, settings))
}

func TestSettingsService_Update_RejectsBadQuietHours(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	settings := entity.DefaultNotificationSettings()
	settings.QuietHours = entity.QuietHours{Enabled: true, StartHour: 25, EndHour: 7}

	err := service.UpdateNotificationSettings(context.Background(), uuid.New(), settings)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSettingsService_Update_RejectsNegativeRadius(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	settings := entity.DefaultNotificationSettings()
	settings.ProximityRadiusKm = -1

	err := service.UpdateNotificationSettings(context.Background(), uuid.New(), settings)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSettingsService_RegisterDeliveryToken(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	ctx := context.Background()
	userID := uuid.New()

	mockDir.EXPECT().
		UpdateDeliveryToken(ctx, userID, "token-new").
		Return(nil)

	require.NoError(t, service.RegisterDeliveryToken(ctx, userID, "token-new"))
}

func TestSettingsService_RegisterDeliveryToken_UnknownMember(t *testing.T) {
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewSettingsService(mockDir)

	ctx := context.Background()
	userID := uuid.New()

	mockDir.EXPECT().
		UpdateDeliveryToken(ctx, userID, "").
		Return(repository.ErrUserNotFound)

	err := service.RegisterDeliveryToken(ctx, userID, "")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
