package impl

import (
	"context"
	"testing"
	"time"

	"convoy/internal/domain/entity"
	mockRepo "convoy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReminderService(t *testing.T) (*reminderService, *mockRepo.MockReminderRepository, *mockRepo.MockUserDirectory, *capturingPusher) {
	t.Helper()

	mockReminders := mockRepo.NewMockReminderRepository(t)
	mockDir := mockRepo.NewMockUserDirectory(t)
	pusher := newCapturingPusher()
	dispatcher := NewDispatcher(pusher, testLogger())

	service := NewReminderService(mockReminders, mockDir, dispatcher, testLogger()).(*reminderService)

	return service, mockReminders, mockDir, pusher
}

func TestReminderService_Sweep_ExactThresholdFires(t *testing.T) {
	service, mockReminders, mockDir, pusher := newReminderService(t)

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	owner := memberWithToken("token-owner")

	atThreshold := &entity.VehicleReminder{
		ID:          uuid.New(),
		UserID:      owner.ID,
		VehicleName: "Octavia",
		Type:        entity.ReminderTypeInspection,
		ExpiresOn:   now.AddDate(0, 0, 30),
		Enabled:     true,
	}
	offThreshold := &entity.VehicleReminder{
		ID:          uuid.New(),
		UserID:      owner.ID,
		VehicleName: "Fabia",
		Type:        entity.ReminderTypeInspection,
		ExpiresOn:   now.AddDate(0, 0, 29),
		Enabled:     true,
	}

	mockReminders.EXPECT().
		ListEnabled(mock.Anything).
		Return([]*entity.VehicleReminder{atThreshold, offThreshold}, nil)

	mockDir.EXPECT().
		FindByIDs(mock.Anything, []uuid.UUID{owner.ID}).
		Return([]*entity.User{owner}, nil)

	report, err := service.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)

	msg := pusher.message("token-owner")
	require.NotNil(t, msg)
	assert.Equal(t, "Vehicle reminder", msg.Title)
	assert.Equal(t, "The technical inspection of Octavia expires in 30 days", msg.Body)
}

func TestReminderService_Sweep_DayZeroAlwaysFires(t *testing.T) {
	service, mockReminders, mockDir, pusher := newReminderService(t)

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	owner := memberWithToken("token-owner")

	// 60 is not a warning threshold for vignettes, but day zero fires anyway.
	sameDay := &entity.VehicleReminder{
		ID:          uuid.New(),
		UserID:      owner.ID,
		VehicleName: "Octavia",
		Type:        entity.ReminderTypeHighwayVignette,
		ExpiresOn:   now,
		Enabled:     true,
	}

	mockReminders.EXPECT().
		ListEnabled(mock.Anything).
		Return([]*entity.VehicleReminder{sameDay}, nil)

	mockDir.EXPECT().
		FindByIDs(mock.Anything, []uuid.UUID{owner.ID}).
		Return([]*entity.User{owner}, nil)

	report, err := service.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)

	msg := pusher.message("token-owner")
	require.NotNil(t, msg)
	assert.Equal(t, "The highway vignette of Octavia expires today", msg.Body)
}

func TestReminderService_Sweep_NothingDue(t *testing.T) {
	service, mockReminders, _, pusher := newReminderService(t)

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	farOff := &entity.VehicleReminder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      entity.ReminderTypeFirstAidKit,
		ExpiresOn: now.AddDate(0, 0, 200),
		Enabled:   true,
	}

	mockReminders.EXPECT().
		ListEnabled(mock.Anything).
		Return([]*entity.VehicleReminder{farOff}, nil)

	report, err := service.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, report.Delivered)
	assert.Empty(t, pusher.tokens())
}

func TestReminderService_Sweep_CategoryOffSkipsOwner(t *testing.T) {
	service, mockReminders, mockDir, pusher := newReminderService(t)

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	owner := memberWithToken("token-owner")
	owner.Settings.VehicleReminders = false

	due := &entity.VehicleReminder{
		ID:          uuid.New(),
		UserID:      owner.ID,
		VehicleName: "Octavia",
		Type:        entity.ReminderTypeLiabilityInsurance,
		ExpiresOn:   now.AddDate(0, 0, 60),
		Enabled:     true,
	}

	mockReminders.EXPECT().
		ListEnabled(mock.Anything).
		Return([]*entity.VehicleReminder{due}, nil)

	mockDir.EXPECT().
		FindByIDs(mock.Anything, []uuid.UUID{owner.ID}).
		Return([]*entity.User{owner}, nil)

	report, err := service.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, report.Delivered)
	assert.Empty(t, pusher.tokens())
}
