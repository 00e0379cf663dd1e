package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/service"
	"convoy/internal/feed"
	mockRepo "convoy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	posCity = orb.Point{14.4378, 50.0755}
	// Roughly 200 m from posCity.
	posNearCity = orb.Point{14.4406, 50.0755}
	// Tens of kilometers away.
	posCountryside = orb.Point{15.1386, 50.5310}
)

func presenceMember() *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		DisplayName:   "Anna",
		DeliveryToken: "token-anna",
		AllowContact:  true,
		MapVisible:    true,
		Settings:      entity.DefaultNotificationSettings(),
		HomeZone:      &entity.HomeZone{Center: posCity, RadiusMeters: 500},
	}
}

// startSession wires a session against the mocked store and runs it until the
// test ends.
func startSession(t *testing.T, user *entity.User, store *mockRepo.MockPresenceStore, onProximity func(entity.PresenceRecord)) (*PresenceSession, *channelSource) {
	t.Helper()

	source := newChannelSource()
	session := NewPresenceSession(user, source, store, onProximity, testLogger())

	done := make(chan error, 1)
	go func() {
		done <- session.Run(context.Background())
	}()

	t.Cleanup(func() {
		source.Close()
		session.Stop()
		<-done
	})

	return session, source
}

func TestPresenceSession_PublishesOutsideHomeZone(t *testing.T) {
	user := presenceMember()
	store := mockRepo.NewMockPresenceStore(t)

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

	// Teardown delete on session end.
	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Return(nil)

	_, source := startSession(t, user, store, nil)

	source.Push(service.Sample{Position: posCountryside})

	select {
	case record := <-upserts:
		assert.Equal(t, user.ID, record.UserID)
		assert.Equal(t, "Anna", record.DisplayName)
		require.NotNil(t, record.Position)
		assert.Equal(t, posCountryside, *record.Position)
		assert.True(t, record.AllowContact)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a presence record to be published")
	}
}

func TestPresenceSession_MasksInsideHomeZone(t *testing.T) {
	user := presenceMember()
	store := mockRepo.NewMockPresenceStore(t)

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(feed.New[[]entity.PresenceRecord](), nil)

	deletes := make(chan uuid.UUID, 8)
	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Run(func(_ context.Context, userID uuid.UUID) {
			deletes <- userID
		}).
		Return(nil)

	_, source := startSession(t, user, store, nil)

	// posNearCity is ~200 m from the zone center, inside the 500 m radius.
	source.Push(service.Sample{Position: posNearCity})

	select {
	case userID := <-deletes:
		assert.Equal(t, user.ID, userID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the presence record to be masked")
	}
}

func TestPresenceSession_ProximityAlertFiresOncePerPeer(t *testing.T) {
	user := presenceMember()
	user.HomeZone = nil
	store := mockRepo.NewMockPresenceStore(t)

	peerID := uuid.New()
	peerPos := posNearCity
	peerFeed := feed.New[[]entity.PresenceRecord]()

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(peerFeed, nil)

	store.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*entity.PresenceRecord")).
		Return(nil)

	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Return(nil)

	var alerts atomic.Int32
	_, source := startSession(t, user, store, func(peer entity.PresenceRecord) {
		assert.Equal(t, peerID, peer.UserID)
		alerts.Add(1)
	})

	peerFeed.Publish([]entity.PresenceRecord{{
		UserID:      peerID,
		DisplayName: "Bedrich",
		Position:    &peerPos,
	}})

	// Keep sampling near the peer; once the snapshot lands, the first sample
	// in range fires the alert and the dedup set absorbs the rest.
	require.Eventually(t, func() bool {
		source.Push(service.Sample{Position: posCity})

		return alerts.Load() == 1
	}, 3*time.Second, 20*time.Millisecond)

	for range 5 {
		source.Push(service.Sample{Position: posCity})
	}
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(1), alerts.Load())
}

func TestPresenceSession_PermissionDeniedEndsSession(t *testing.T) {
	user := presenceMember()
	store := mockRepo.NewMockPresenceStore(t)

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(feed.New[[]entity.PresenceRecord](), nil)

	deletes := make(chan uuid.UUID, 1)
	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Run(func(_ context.Context, userID uuid.UUID) {
			select {
			case deletes <- userID:
			default:
			}
		}).
		Return(nil)

	source := newChannelSource()
	session := NewPresenceSession(user, source, store, nil, testLogger())

	done := make(chan error, 1)
	go func() {
		done <- session.Run(context.Background())
	}()

	source.Push(service.Sample{Err: service.ErrPermissionDenied})

	select {
	case err := <-done:
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the session to end")
	}

	// The record is removed on the way out.
	select {
	case userID := <-deletes:
		assert.Equal(t, user.ID, userID)
	case <-time.After(time.Second):
		t.Fatal("expected the presence record to be deleted")
	}
}

func TestPresenceSession_StopRemovesRecordBeforeReturning(t *testing.T) {
	user := presenceMember()
	store := mockRepo.NewMockPresenceStore(t)

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(feed.New[[]entity.PresenceRecord](), nil)

	var deleted atomic.Bool
	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Run(func(_ context.Context, _ uuid.UUID) {
			deleted.Store(true)
		}).
		Return(nil)

	source := newChannelSource()
	session := NewPresenceSession(user, source, store, nil, testLogger())

	running := make(chan error, 1)
	go func() {
		running <- session.Run(context.Background())
	}()

	// Stopping right on the heels of the start is the common path: the
	// service stops a session as soon as the first ingest returned.
	session.Stop()

	assert.True(t, deleted.Load())
	require.NoError(t, <-running)
}

func TestPresenceSession_OutlivesClosedPeerFeed(t *testing.T) {
	user := presenceMember()
	store := mockRepo.NewMockPresenceStore(t)

	peerFeed := feed.New[[]entity.PresenceRecord]()

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(peerFeed, nil)

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

	_, source := startSession(t, user, store, nil)

	peerFeed.Close()

	// Samples still flow after the peer feed is gone.
	require.Eventually(t, func() bool {
		source.Push(service.Sample{Position: posCountryside})

		select {
		case record := <-upserts:
			assert.Equal(t, posCountryside, *record.Position)

			return true
		default:
			return false
		}
	}, 3*time.Second, 20*time.Millisecond)
}

func TestPresenceSession_HiddenMemberDetectsButNeverPublishes(t *testing.T) {
	user := presenceMember()
	user.MapVisible = false
	user.HomeZone = nil
	store := mockRepo.NewMockPresenceStore(t)

	peerID := uuid.New()
	peerPos := posNearCity
	peerFeed := feed.New[[]entity.PresenceRecord]()

	store.EXPECT().
		Subscribe(mock.Anything).
		Return(peerFeed, nil)

	// Every sample masks the record; Upsert must never happen.
	store.EXPECT().
		Delete(mock.Anything, user.ID).
		Return(nil)

	var alerts atomic.Int32
	_, source := startSession(t, user, store, func(peer entity.PresenceRecord) {
		assert.Equal(t, peerID, peer.UserID)
		alerts.Add(1)
	})

	peerFeed.Publish([]entity.PresenceRecord{{
		UserID:      peerID,
		DisplayName: "Bedrich",
		Position:    &peerPos,
	}})

	require.Eventually(t, func() bool {
		source.Push(service.Sample{Position: posCity})

		return alerts.Load() == 1
	}, 3*time.Second, 20*time.Millisecond)

	store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
