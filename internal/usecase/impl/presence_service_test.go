package impl

import (
	"context"
	"testing"
	"time"

	"convoy/config"
	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/domain/repository"
	"convoy/internal/feed"
	mockRepo "convoy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPresenceService_Ingest_StartsSessionAndPublishes(t *testing.T) {
	store := mockRepo.NewMockPresenceStore(t)
	mockDir := mockRepo.NewMockUserDirectory(t)
	pusher := newCapturingPusher()
	service := NewPresenceService(store, mockDir, NewDispatcher(pusher, testLogger()), &config.Config{}, testLogger())

	ctx := context.Background()
	user := presenceMember()
	user.HomeZone = nil

	mockDir.EXPECT().
		FindByID(mock.Anything, user.ID).
		Return(user, nil)

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(feed.New[[]entity.PresenceRecord](), nil)

	upserts := make(chan *entity.PresenceRecord, 8)
	store.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.PresenceRecord")).
		Run(func(_ context.Context, record *entity.PresenceRecord) {
			upserts <- record
		}).
		Return(nil)

	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Return(nil)

	require.NoError(t, service.Ingest(ctx, user.ID, posCity))

	select {
	case record := <-upserts:
		assert.Equal(t, user.ID, record.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the sample to reach the store")
	}

	// The record is gone once sharing stops.
	require.NoError(t, service.Stop(ctx, user.ID))
}

func TestPresenceService_Ingest_UnknownMember(t *testing.T) {
	store := mockRepo.NewMockPresenceStore(t)
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewPresenceService(store, mockDir, NewDispatcher(newCapturingPusher(), testLogger()), &config.Config{}, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockDir.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	err := service.Ingest(ctx, userID, posCity)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestPresenceService_StopWithoutSessionIsNoop(t *testing.T) {
	store := mockRepo.NewMockPresenceStore(t)
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewPresenceService(store, mockDir, NewDispatcher(newCapturingPusher(), testLogger()), &config.Config{}, testLogger())

	require.NoError(t, service.Stop(context.Background(), uuid.New()))
	require.NoError(t, service.ReportPermissionDenied(context.Background(), uuid.New()))
}

func TestPresenceService_ConfiguredHomeZoneRadiusApplies(t *testing.T) {
	store := mockRepo.NewMockPresenceStore(t)
	mockDir := mockRepo.NewMockUserDirectory(t)
	cfg := &config.Config{Presence: &config.PresenceConfig{HomeZoneRadiusMeters: 100}}
	service := NewPresenceService(store, mockDir, NewDispatcher(newCapturingPusher(), testLogger()), cfg, testLogger())

	ctx := context.Background()
	user := presenceMember()
	// No radius chosen; the operator default of 100 m applies, so a position
	// 200 m from home is outside the zone and gets published.
	user.HomeZone = &entity.HomeZone{Center: posCity}

	mockDir.EXPECT().
		FindByID(mock.Anything, user.ID).
		Return(user, nil)

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(feed.New[[]entity.PresenceRecord](), nil)

	upserts := make(chan *entity.PresenceRecord, 8)
	store.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.PresenceRecord")).
		Run(func(_ context.Context, record *entity.PresenceRecord) {
			upserts <- record
		}).
		Return(nil)

	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Return(nil)

	require.NoError(t, service.Ingest(ctx, user.ID, posNearCity))

	select {
	case record := <-upserts:
		require.NotNil(t, record.Position)
		assert.Equal(t, posNearCity, *record.Position)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the position outside the configured zone to publish")
	}

	require.NoError(t, service.Stop(ctx, user.ID))
}

func TestPresenceService_List(t *testing.T) {
	store := mockRepo.NewMockPresenceStore(t)
	mockDir := mockRepo.NewMockUserDirectory(t)
	service := NewPresenceService(store, mockDir, NewDispatcher(newCapturingPusher(), testLogger()), &config.Config{}, testLogger())

	ctx := context.Background()
	records := []entity.PresenceRecord{{UserID: uuid.New(), DisplayName: "Anna"}}

	store.EXPECT().
		Snapshot(ctx).
		Return(records, nil)

	got, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
