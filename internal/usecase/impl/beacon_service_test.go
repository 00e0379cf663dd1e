package impl

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"convoy/config"
	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/domain/event"
	"convoy/internal/domain/repository"
	"convoy/internal/feed"
	mockRepo "convoy/internal/mocks/repository"
	mockSvc "convoy/internal/mocks/service"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBeaconService(t *testing.T) (usecase.BeaconUsecase, *mockRepo.MockBeaconStore, *mockRepo.MockUserDirectory, *mockSvc.MockEventPublisher) {
	t.Helper()

	mockStore := mockRepo.NewMockBeaconStore(t)
	mockDir := mockRepo.NewMockUserDirectory(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{}

	service := NewBeaconService(mockStore, mockDir, mockPublisher, cfg, testLogger())

	return service, mockStore, mockDir, mockPublisher
}

func TestBeaconService_Create(t *testing.T) {
	service, mockStore, mockDir, mockPublisher := newBeaconService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockStore.EXPECT().
		FindOpenByUser(ctx, userID).
		Return(nil, repository.ErrBeaconNotFound)

	mockDir.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, DisplayName: "Anna"}, nil)

	mockStore.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Beacon")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*event.Event")).
		RunAndReturn(func(_ context.Context, evt *event.Event) error {
			assert.Equal(t, event.KindBeaconCreated, evt.Kind)
			assert.Equal(t, userID, evt.ActorID)
			assert.Equal(t, "Anna", evt.ActorName)

			return nil
		})

	beacon, err := service.Create(ctx, usecase.CreateBeaconInput{
		UserID:   userID,
		Kind:     entity.BeaconKindFlatTire,
		Position: orb.Point{14.4378, 50.0755},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BeaconStatusActive, beacon.Status)
	assert.Equal(t, "Anna", beacon.DisplayName)
	assert.Nil(t, beacon.HelperID)
}

func TestBeaconService_Create_UnknownKind(t *testing.T) {
	service, _, _, _ := newBeaconService(t)

	_, err := service.Create(context.Background(), usecase.CreateBeaconInput{
		UserID: uuid.New(),
		Kind:   entity.BeaconKind("alien_abduction"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestBeaconService_Create_SecondOpenBeaconRejected(t *testing.T) {
	service, mockStore, _, _ := newBeaconService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockStore.EXPECT().
		FindOpenByUser(ctx, userID).
		Return(&entity.Beacon{ID: uuid.New(), UserID: userID, Status: entity.BeaconStatusActive}, nil)

	_, err := service.Create(ctx, usecase.CreateBeaconInput{
		UserID: userID,
		Kind:   entity.BeaconKindBreakdown,
	})
	assert.ErrorIs(t, err, domainerrors.ErrBeaconAlreadyActive)
}

func TestBeaconService_Respond(t *testing.T) {
	service, mockStore, mockDir, mockPublisher := newBeaconService(t)

	ctx := context.Background()
	beaconID := uuid.New()
	creatorID := uuid.New()
	helperID := uuid.New()

	mockStore.EXPECT().
		FindByID(ctx, beaconID).
		Return(&entity.Beacon{ID: beaconID, UserID: creatorID, Status: entity.BeaconStatusActive}, nil)

	mockDir.EXPECT().
		FindByID(ctx, helperID).
		Return(&entity.User{ID: helperID, DisplayName: "Bedrich"}, nil)

	claimed := &entity.Beacon{
		ID:         beaconID,
		UserID:     creatorID,
		Status:     entity.BeaconStatusHelpComing,
		HelperID:   &helperID,
		HelperName: "Bedrich",
	}
	mockStore.EXPECT().
		TransactionalUpdate(ctx, beaconID, entity.BeaconStatusActive, mock.AnythingOfType("repository.BeaconPatch")).
		Return(claimed, nil)

	mockPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*event.Event")).
		RunAndReturn(func(_ context.Context, evt *event.Event) error {
			assert.Equal(t, event.KindBeaconClaimed, evt.Kind)
			assert.Equal(t, creatorID, evt.RecipientID)
			assert.Equal(t, "Bedrich", evt.HelperName)

			return nil
		})

	beacon, err := service.Respond(ctx, beaconID, helperID)
	require.NoError(t, err)
	assert.Equal(t, entity.BeaconStatusHelpComing, beacon.Status)
	require.NotNil(t, beacon.HelperID)
	assert.Equal(t, helperID, *beacon.HelperID)
}

func TestBeaconService_Respond_AlreadyClaimed(t *testing.T) {
	service, mockStore, _, _ := newBeaconService(t)

	ctx := context.Background()
	beaconID := uuid.New()
	otherHelper := uuid.New()

	mockStore.EXPECT().
		FindByID(ctx, beaconID).
		Return(&entity.Beacon{
			ID:       beaconID,
			UserID:   uuid.New(),
			Status:   entity.BeaconStatusHelpComing,
			HelperID: &otherHelper,
		}, nil)

	_, err := service.Respond(ctx, beaconID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBeaconAlreadyClaimed)
}

func TestBeaconService_Respond_LostRace(t *testing.T) {
	service, mockStore, mockDir, _ := newBeaconService(t)

	ctx := context.Background()
	beaconID := uuid.New()
	helperID := uuid.New()

	// The read still sees active; the conditional update loses to a
	// concurrent responder.
	mockStore.EXPECT().
		FindByID(ctx, beaconID).
		Return(&entity.Beacon{ID: beaconID, UserID: uuid.New(), Status: entity.BeaconStatusActive}, nil)

	mockDir.EXPECT().
		FindByID(ctx, helperID).
		Return(&entity.User{ID: helperID, DisplayName: "Bedrich"}, nil)

	mockStore.EXPECT().
		TransactionalUpdate(ctx, beaconID, entity.BeaconStatusActive, mock.AnythingOfType("repository.BeaconPatch")).
		Return(nil, repository.ErrBeaconConflict)

	_, err := service.Respond(ctx, beaconID, helperID)
	assert.ErrorIs(t, err, domainerrors.ErrBeaconAlreadyClaimed)
}

func TestBeaconService_Respond_ConcurrentSingleWinner(t *testing.T) {
	service, mockStore, mockDir, mockPublisher := newBeaconService(t)

	ctx := context.Background()
	beaconID := uuid.New()
	creatorID := uuid.New()

	// Shared beacon row behind the mocks, mutated with real conditional-update
	// semantics so two overlapping responders race for the same transition.
	var mu sync.Mutex
	state := &entity.Beacon{ID: beaconID, UserID: creatorID, Status: entity.BeaconStatusActive}

	mockStore.EXPECT().
		FindByID(mock.Anything, beaconID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Beacon, error) {
			mu.Lock()
			defer mu.Unlock()
			snapshot := *state

			return &snapshot, nil
		})

	mockDir.EXPECT().
		FindByID(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, DisplayName: "Helper"}, nil
		})

	mockStore.EXPECT().
		TransactionalUpdate(mock.Anything, beaconID, entity.BeaconStatusActive, mock.AnythingOfType("repository.BeaconPatch")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, expected entity.BeaconStatus, patch repository.BeaconPatch) (*entity.Beacon, error) {
			mu.Lock()
			defer mu.Unlock()
			if state.Status != expected {
				return nil, repository.ErrBeaconConflict
			}
			state.Status = patch.Status
			state.HelperID = patch.HelperID
			state.HelperName = patch.HelperName
			snapshot := *state

			return &snapshot, nil
		})

	var claims atomic.Int32
	mockPublisher.EXPECT().
		PublishEvent(mock.Anything, mock.AnythingOfType("*event.Event")).
		RunAndReturn(func(_ context.Context, evt *event.Event) error {
			assert.Equal(t, event.KindBeaconClaimed, evt.Kind)
			claims.Add(1)

			return nil
		})

	results := make(chan error, 2)
	for range 2 {
		go func() {
			_, err := service.Respond(ctx, beaconID, uuid.New())
			results <- err
		}()
	}

	var wins, conflicts int
	for range 2 {
		switch err := <-results; {
		case err == nil:
			wins++
		case errors.Is(err, domainerrors.ErrBeaconAlreadyClaimed):
			conflicts++
		default:
			t.Fatalf("unexpected respond error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, int32(1), claims.Load())
}

func TestBeaconService_Respond_OwnBeacon(t *testing.T) {
	service, mockStore, _, _ := newBeaconService(t)

	ctx := context.Background()
	beaconID := uuid.New()
	creatorID := uuid.New()

	mockStore.EXPECT().
		FindByID(ctx, beaconID).
		Return(&entity.Beacon{ID: beaconID, UserID: creatorID, Status: entity.BeaconStatusActive}, nil)

	_, err := service.Respond(ctx, beaconID, creatorID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestBeaconService_Resolve_ByHelper(t *testing.T) {
	service, mockStore, _, mockPublisher := newBeaconService(t)

	ctx := context.Background()
	beaconID := uuid.New()
	creatorID := uuid.New()
	helperID := uuid.New()

	mockStore.EXPECT().
		FindByID(ctx, beaconID).
		Return(&entity.Beacon{
			ID:         beaconID,
			UserID:     creatorID,
			Status:     entity.BeaconStatusHelpComing,
			HelperID:   &helperID,
			HelperName: "Bedrich",
		}, nil)

	mockStore.EXPECT().
		TransactionalUpdate(ctx, beaconID, entity.BeaconStatusHelpComing, mock.AnythingOfType("repository.BeaconPatch")).
		Return(&entity.Beacon{ID: beaconID, Status: entity.BeaconStatusResolved}, nil)

	mockStore.EXPECT().
		Delete(ctx, beaconID).
		Return(nil)

	mockPublisher.EXPECT().
		PublishEvent(ctx, mock.AnythingOfType("*event.Event")).
		RunAndReturn(func(_ context.Context, evt *event.Event) error {
			assert.Equal(t, event.KindBeaconResolved, evt.Kind)
			assert.Equal(t, helperID, evt.RecipientID)

			return nil
		})

	err := service.Resolve(ctx, beaconID, helperID)
	require.NoError(t, err)
}

func TestBeaconService_Resolve_ForbiddenForStranger(t *testing.T) {
	service, mockStore, _, _ := newBeaconService(t)

	ctx := context.Background()
	beaconID := uuid.New()

	mockStore.EXPECT().
		FindByID(ctx, beaconID).
		Return(&entity.Beacon{ID: beaconID, UserID: uuid.New(), Status: entity.BeaconStatusActive}, nil)

	err := service.Resolve(ctx, beaconID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBeaconService_VisibleTo(t *testing.T) {
	service, mockStore, _, _ := newBeaconService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	viewerPos := orb.Point{14.4378, 50.0755}

	own := &entity.Beacon{ID: uuid.New(), UserID: viewerID, Position: viewerPos, Status: entity.BeaconStatusActive}
	near := &entity.Beacon{ID: uuid.New(), UserID: uuid.New(), Position: orb.Point{14.45, 50.08}, Status: entity.BeaconStatusActive}
	// Brno is far outside the default 50 km visibility radius from Prague.
	far := &entity.Beacon{ID: uuid.New(), UserID: uuid.New(), Position: orb.Point{16.6068, 49.1951}, Status: entity.BeaconStatusActive}

	mockStore.EXPECT().
		ListOpen(ctx).
		Return([]*entity.Beacon{own, near, far}, nil)

	visible, err := service.VisibleTo(ctx, viewerID, &viewerPos)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, near.ID, visible[0].ID)
}

func TestBeaconService_Watch_StreamsFilteredSnapshots(t *testing.T) {
	service, mockStore, _, _ := newBeaconService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewerID := uuid.New()
	viewerPos := orb.Point{14.4378, 50.0755}

	raw := feed.New[[]*entity.Beacon]()
	mockStore.EXPECT().
		Subscribe(mock.Anything).
		Return(raw, nil)

	snapshots, err := service.Watch(ctx, viewerID, &viewerPos)
	require.NoError(t, err)

	own := &entity.Beacon{ID: uuid.New(), UserID: viewerID, Position: viewerPos, Status: entity.BeaconStatusActive}
	near := &entity.Beacon{ID: uuid.New(), UserID: uuid.New(), Position: orb.Point{14.45, 50.08}, Status: entity.BeaconStatusActive}
	far := &entity.Beacon{ID: uuid.New(), UserID: uuid.New(), Position: orb.Point{16.6068, 49.1951}, Status: entity.BeaconStatusActive}

	raw.Publish([]*entity.Beacon{own, near, far})

	select {
	case visible := <-snapshots.Updates():
		require.Len(t, visible, 1)
		assert.Equal(t, near.ID, visible[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a filtered snapshot")
	}

	// Closing the store feed ends the stream.
	raw.Close()

	select {
	case _, ok := <-snapshots.Updates():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the stream to close")
	}
}

func TestBeaconService_VisibleTo_UnknownPositionFailsOpen(t *testing.T) {
	service, mockStore, _, _ := newBeaconService(t)

	ctx := context.Background()
	viewerID := uuid.New()

	near := &entity.Beacon{ID: uuid.New(), UserID: uuid.New(), Position: orb.Point{14.45, 50.08}, Status: entity.BeaconStatusActive}
	far := &entity.Beacon{ID: uuid.New(), UserID: uuid.New(), Position: orb.Point{16.6068, 49.1951}, Status: entity.BeaconStatusActive}

	mockStore.EXPECT().
		ListOpen(ctx).
		Return([]*entity.Beacon{near, far}, nil)

	visible, err := service.VisibleTo(ctx, viewerID, nil)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}
