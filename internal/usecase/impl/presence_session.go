package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/lifecycle"
	"convoy/internal/domain/repository"
	"convoy/internal/domain/service"
	"convoy/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// PresenceSession owns one member's watch-and-publish loop: it consumes the
// device's location samples, applies home-zone masking, republishes the
// presence record and detects nearby peers.
//
// The proximity "already notified" set is session-scoped and never pruned;
// once a peer triggered an alert, they do not trigger another one until the
// session restarts. That is what keeps GPS jitter near a boundary quiet.
type PresenceSession struct {
	user        *entity.User
	source      service.LocationSource
	store       repository.PresenceStore
	onProximity func(peer entity.PresenceRecord)
	logger      *slog.Logger

	notified map[uuid.UUID]struct{}
	peers    []entity.PresenceRecord

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewPresenceSession creates a session for the given member. onProximity is
// invoked at most once per peer for the lifetime of the session; nil disables
// proximity alerts regardless of settings.
func NewPresenceSession(
	user *entity.User,
	source service.LocationSource,
	store repository.PresenceStore,
	onProximity func(peer entity.PresenceRecord),
	logger *slog.Logger,
) *PresenceSession {
	return &PresenceSession{
		user:        user,
		source:      source,
		store:       store,
		onProximity: onProximity,
		logger:      logger,
		notified:    make(map[uuid.UUID]struct{}),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Run drives the session until the context is cancelled, the sample stream
// ends, or a permission denial arrives. On every exit path the member's
// presence record is deleted before Run returns.
func (s *PresenceSession) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	defer close(s.done)
	defer cancel()
	defer s.teardown()

	go func() {
		select {
		case <-s.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	samples, err := s.source.Updates(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to start location stream")
	}

	peerFeed, err := s.store.Subscribe(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to presence snapshots")
	}
	defer peerFeed.Close()

	peerUpdates := peerFeed.Updates()

	for {
		select {
		case <-ctx.Done():
			return nil

		case snapshot, ok := <-peerUpdates:
			if !ok {
				peerUpdates = nil

				continue
			}
			s.peers = snapshot

		case sample, ok := <-samples:
			if !ok {
				return nil
			}
			if sample.Err != nil {
				if errors.Is(sample.Err, service.ErrPermissionDenied) {
					return sample.Err
				}
				// Transient fix failures never stop tracking.
				s.logger.Warn("location sample failed",
					slog.String("user_id", s.user.ID.String()),
					slog.String("error", sample.Err.Error()),
				)

				continue
			}

			s.handleSample(ctx, sample.Position)
		}
	}
}

// Stop cancels the session and blocks until the presence record is gone.
// It is safe to call at any point after Run has been started, including
// concurrently with Run's own setup, and safe to call more than once.
func (s *PresenceSession) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// handleSample publishes or masks the position, then runs proximity detection.
// Detection runs even while the position is masked or the member is hidden
// from the map: noticing others does not depend on being visible yourself.
func (s *PresenceSession) handleSample(ctx context.Context, position orb.Point) {
	if !s.user.MapVisible || s.insideHomeZone(position) {
		if err := s.store.Delete(ctx, s.user.ID); err != nil {
			s.logger.Warn("failed to mask presence record",
				slog.String("user_id", s.user.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	} else {
		record := &entity.PresenceRecord{
			UserID:       s.user.ID,
			DisplayName:  s.user.DisplayName,
			AvatarRef:    s.user.AvatarRef,
			StatusText:   s.user.StatusText,
			Position:     &position,
			LastActiveAt: time.Now(),
			AllowContact: s.user.AllowContact,
		}
		if err := s.store.Upsert(ctx, record); err != nil {
			s.logger.Warn("failed to publish presence record",
				slog.String("user_id", s.user.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.detectProximity(position)
}

// detectProximity fires one alert per newly-near peer from the last known
// snapshot.
func (s *PresenceSession) detectProximity(position orb.Point) {
	settings := s.user.Settings
	if s.onProximity == nil || settings == nil || !settings.Enabled || !settings.ProximityAlerts {
		return
	}

	radius := settings.ProximityRadiusMeters()
	for _, peer := range s.peers {
		if peer.UserID == s.user.ID || peer.Position == nil {
			continue
		}
		if _, already := s.notified[peer.UserID]; already {
			continue
		}
		if !geo.WithinMeters(position, *peer.Position, radius) {
			continue
		}

		s.notified[peer.UserID] = struct{}{}
		s.onProximity(peer)
	}
}

func (s *PresenceSession) insideHomeZone(position orb.Point) bool {
	zone := s.user.HomeZone
	if zone == nil {
		return false
	}

	return geo.DistanceMeters(position, zone.Center) < zone.Radius()
}

// teardown removes the presence record with a fresh context, so the delete
// still happens when Run is exiting because its context was cancelled.
func (s *PresenceSession) teardown() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.store.Delete(ctx, s.user.ID); err != nil {
		s.logger.Warn("failed to delete presence record on stop",
			slog.String("user_id", s.user.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
