package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"convoy/config"
	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/domain/repository"
	"convoy/internal/domain/service"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// runningSession pairs a session with the source its samples are pushed into.
type runningSession struct {
	session *PresenceSession
	source  *channelSource
}

type presenceService struct {
	store      repository.PresenceStore
	userDir    repository.UserDirectory
	dispatcher usecase.DispatcherUsecase
	config     *config.Config
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*runningSession
}

// NewPresenceService creates the session manager behind the presence ingest
// API. Each member gets one session, started lazily on their first sample.
func NewPresenceService(
	store repository.PresenceStore,
	userDir repository.UserDirectory,
	dispatcher usecase.DispatcherUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PresenceUsecase {
	return &presenceService{
		store:      store,
		userDir:    userDir,
		dispatcher: dispatcher,
		config:     cfg,
		logger:     logger,
		sessions:   make(map[uuid.UUID]*runningSession),
	}
}

// Ingest routes one position sample into the member's session, starting one
// if none is running.
func (s *presenceService) Ingest(ctx context.Context, userID uuid.UUID, position orb.Point) error {
	running, err := s.sessionFor(ctx, userID)
	if err != nil {
		return err
	}

	running.source.Push(service.Sample{Position: position})

	return nil
}

// ReportPermissionDenied ends the member's session the way a revoked platform
// permission would: terminally.
func (s *presenceService) ReportPermissionDenied(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	running := s.sessions[userID]
	s.mu.Unlock()

	if running == nil {
		return nil
	}

	running.source.Push(service.Sample{Err: service.ErrPermissionDenied})
	running.session.Stop()

	return nil
}

// Stop ends the member's session. The presence record is gone before Stop
// returns.
func (s *presenceService) Stop(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	running := s.sessions[userID]
	s.mu.Unlock()

	if running == nil {
		return nil
	}

	running.source.Close()
	running.session.Stop()

	return nil
}

// List returns the current presence table for the map view.
func (s *presenceService) List(ctx context.Context) ([]entity.PresenceRecord, error) {
	records, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read presence table: %w", err)
	}

	return records, nil
}

// sessionFor returns the member's running session, creating and starting one
// when needed.
func (s *presenceService) sessionFor(ctx context.Context, userID uuid.UUID) (*runningSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if running, ok := s.sessions[userID]; ok {
		return running, nil
	}

	user, err := s.userDir.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	s.applyRadiusDefaults(user)

	source := newChannelSource()
	session := NewPresenceSession(user, source, s.store, s.proximityAlert(user), s.logger)
	running := &runningSession{session: session, source: source}
	s.sessions[userID] = running

	go func() {
		// The session outlives the ingest request; it ends via Stop, a
		// permission denial or a closed source.
		if err := session.Run(context.Background()); err != nil {
			if errors.Is(err, service.ErrPermissionDenied) {
				s.logger.Info("presence session ended, permission denied",
					slog.String("user_id", userID.String()),
				)
			} else {
				s.logger.Error("presence session failed",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
			}
		}

		s.mu.Lock()
		delete(s.sessions, userID)
		s.mu.Unlock()
	}()

	return running, nil
}

// applyRadiusDefaults backfills radii the member left unset with the
// operator-configured defaults. Entity fallbacks cover the rest.
func (s *presenceService) applyRadiusDefaults(user *entity.User) {
	pcfg := s.config.Presence
	if pcfg == nil {
		return
	}

	if user.HomeZone != nil && user.HomeZone.RadiusMeters <= 0 && pcfg.HomeZoneRadiusMeters > 0 {
		user.HomeZone.RadiusMeters = pcfg.HomeZoneRadiusMeters
	}
	if user.Settings != nil && user.Settings.ProximityRadiusKm <= 0 && pcfg.ProximityRadiusKm > 0 {
		user.Settings.ProximityRadiusKm = pcfg.ProximityRadiusKm
	}
}

// proximityAlert builds the per-session callback that pushes a "member
// nearby" notification to the session owner.
func (s *presenceService) proximityAlert(owner *entity.User) func(peer entity.PresenceRecord) {
	return func(peer entity.PresenceRecord) {
		if !owner.Sendable() || !owner.Settings.Allows(entity.CategoryProximityAlerts, time.Now()) {
			return
		}

		report := s.dispatcher.Dispatch(context.Background(), []usecase.Send{{
			UserID:  owner.ID,
			Token:   owner.DeliveryToken,
			Title:   "Member nearby",
			Body:    fmt.Sprintf("%s is in your area", peer.DisplayName),
			Data:    map[string]string{"kind": "presence.proximity", "peer_id": peer.UserID.String()},
			Channel: service.ChannelDefault,
		}})

		if report.Failed > 0 {
			s.logger.Warn("proximity alert delivery failed",
				slog.String("user_id", owner.ID.String()),
			)
		}
	}
}
