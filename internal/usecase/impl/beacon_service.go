package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"convoy/config"
	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/domain/event"
	"convoy/internal/domain/repository"
	"convoy/internal/domain/service"
	"convoy/internal/feed"
	"convoy/internal/geo"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type beaconService struct {
	beaconStore repository.BeaconStore
	userDir     repository.UserDirectory
	publisher   service.EventPublisher
	config      *config.Config
	logger      *slog.Logger
}

// NewBeaconService creates the emergency-beacon state machine. The service
// mutates beacon state and emits domain events; the notification router
// reacts to those events, never the service itself.
func NewBeaconService(
	beaconStore repository.BeaconStore,
	userDir repository.UserDirectory,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BeaconUsecase {
	return &beaconService{
		beaconStore: beaconStore,
		userDir:     userDir,
		publisher:   publisher,
		config:      cfg,
		logger:      logger,
	}
}

// Create opens a new beacon in the active state. A member with an open beacon
// cannot raise a second one.
func (s *beaconService) Create(ctx context.Context, input usecase.CreateBeaconInput) (*entity.Beacon, error) {
	if !input.Kind.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown beacon kind: %s", input.Kind))
	}

	if _, err := s.beaconStore.FindOpenByUser(ctx, input.UserID); err == nil {
		return nil, domainerrors.ErrBeaconAlreadyActive
	} else if !errors.Is(err, repository.ErrBeaconNotFound) {
		return nil, fmt.Errorf("failed to check for open beacon: %w", err)
	}

	owner, err := s.userDir.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to load beacon owner: %w", err)
	}

	now := time.Now()
	beacon := &entity.Beacon{
		ID:          uuid.New(),
		UserID:      owner.ID,
		DisplayName: owner.DisplayName,
		AvatarRef:   owner.AvatarRef,
		Position:    input.Position,
		Kind:        input.Kind,
		Description: input.Description,
		Status:      entity.BeaconStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.beaconStore.Create(ctx, beacon); err != nil {
		return nil, fmt.Errorf("failed to create beacon: %w", err)
	}

	evt := event.New(event.KindBeaconCreated)
	evt.ActorID = owner.ID
	evt.ActorName = owner.DisplayName
	evt.BeaconID = beacon.ID
	evt.BeaconKind = string(beacon.Kind)
	s.publish(ctx, evt)

	return beacon, nil
}

// Respond claims an active beacon for the helper. The conditional update in
// the store guarantees exactly one concurrent responder wins.
func (s *beaconService) Respond(ctx context.Context, beaconID, helperID uuid.UUID) (*entity.Beacon, error) {
	beacon, err := s.beaconStore.FindByID(ctx, beaconID)
	if err != nil {
		if errors.Is(err, repository.ErrBeaconNotFound) {
			return nil, domainerrors.ErrBeaconNotFound
		}

		return nil, fmt.Errorf("failed to load beacon: %w", err)
	}

	if beacon.Status != entity.BeaconStatusActive {
		if beacon.Status == entity.BeaconStatusHelpComing {
			return nil, domainerrors.ErrBeaconAlreadyClaimed
		}

		return nil, domainerrors.ErrBeaconInvalidTransition
	}

	if beacon.UserID == helperID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot respond to your own beacon")
	}

	helper, err := s.userDir.FindByID(ctx, helperID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to load helper: %w", err)
	}

	updated, err := s.beaconStore.TransactionalUpdate(ctx, beaconID, entity.BeaconStatusActive, repository.BeaconPatch{
		Status:     entity.BeaconStatusHelpComing,
		HelperID:   &helper.ID,
		HelperName: helper.DisplayName,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBeaconConflict):
			return nil, domainerrors.ErrBeaconAlreadyClaimed
		case errors.Is(err, repository.ErrBeaconNotFound):
			return nil, domainerrors.ErrBeaconNotFound
		}

		return nil, fmt.Errorf("failed to claim beacon: %w", err)
	}

	evt := event.New(event.KindBeaconClaimed)
	evt.ActorID = helper.ID
	evt.ActorName = helper.DisplayName
	evt.BeaconID = updated.ID
	evt.BeaconKind = string(updated.Kind)
	evt.HelperID = helper.ID
	evt.HelperName = helper.DisplayName
	evt.RecipientID = updated.UserID
	s.publish(ctx, evt)

	return updated, nil
}

// Resolve closes the beacon and deletes its record; no terminal row persists
// beyond the transition event. Only the creator or the recorded helper may
// resolve.
func (s *beaconService) Resolve(ctx context.Context, beaconID, actorID uuid.UUID) error {
	beacon, err := s.beaconStore.FindByID(ctx, beaconID)
	if err != nil {
		if errors.Is(err, repository.ErrBeaconNotFound) {
			return domainerrors.ErrBeaconNotFound
		}

		return fmt.Errorf("failed to load beacon: %w", err)
	}

	if !beacon.Status.Open() {
		return domainerrors.ErrBeaconInvalidTransition
	}

	isCreator := beacon.UserID == actorID
	isHelper := beacon.HelperID != nil && *beacon.HelperID == actorID
	if !isCreator && !isHelper {
		return domainerrors.ErrForbidden
	}

	// Win the transition race before deleting, so a concurrent responder
	// either claimed first or sees the beacon gone.
	if _, err := s.beaconStore.TransactionalUpdate(ctx, beaconID, beacon.Status, repository.BeaconPatch{
		Status: entity.BeaconStatusResolved,
	}); err != nil {
		switch {
		case errors.Is(err, repository.ErrBeaconConflict):
			return domainerrors.ErrBeaconInvalidTransition
		case errors.Is(err, repository.ErrBeaconNotFound):
			return domainerrors.ErrBeaconNotFound
		}

		return fmt.Errorf("failed to resolve beacon: %w", err)
	}

	if err := s.beaconStore.Delete(ctx, beaconID); err != nil {
		return fmt.Errorf("failed to delete resolved beacon: %w", err)
	}

	evt := event.New(event.KindBeaconResolved)
	evt.ActorID = actorID
	evt.ActorName = beacon.DisplayName
	evt.BeaconID = beacon.ID
	evt.BeaconKind = string(beacon.Kind)
	if beacon.HelperID != nil {
		evt.HelperID = *beacon.HelperID
		evt.HelperName = beacon.HelperName
		evt.RecipientID = *beacon.HelperID
	}
	s.publish(ctx, evt)

	return nil
}

// VisibleTo returns the open beacons a viewer should see: everything except
// their own, within the visibility radius. An unknown viewer position fails
// open and shows all beacons, since the feed exists for safety.
func (s *beaconService) VisibleTo(ctx context.Context, viewerID uuid.UUID, viewerPos *orb.Point) ([]*entity.Beacon, error) {
	beacons, err := s.beaconStore.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open beacons: %w", err)
	}

	return s.visibleSubset(beacons, viewerID, viewerPos), nil
}

// Watch streams the viewer's visible beacons from the store's snapshot feed.
func (s *beaconService) Watch(ctx context.Context, viewerID uuid.UUID, viewerPos *orb.Point) (*feed.Feed[[]*entity.Beacon], error) {
	raw, err := s.beaconStore.Subscribe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to beacon snapshots: %w", err)
	}

	out := feed.New[[]*entity.Beacon]()

	go func() {
		defer out.Close()
		defer raw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case snapshot, ok := <-raw.Updates():
				if !ok {
					return
				}
				out.Publish(s.visibleSubset(snapshot, viewerID, viewerPos))
			}
		}
	}()

	return out, nil
}

func (s *beaconService) visibleSubset(beacons []*entity.Beacon, viewerID uuid.UUID, viewerPos *orb.Point) []*entity.Beacon {
	radius := s.config.Beacon.VisibilityRadiusMeters()

	visible := make([]*entity.Beacon, 0, len(beacons))
	for _, beacon := range beacons {
		if beacon.UserID == viewerID {
			continue
		}
		if viewerPos != nil && !geo.WithinMeters(*viewerPos, beacon.Position, radius) {
			continue
		}
		visible = append(visible, beacon)
	}

	return visible
}

// publish emits the transition event. A publish failure never rolls back the
// state change; it is logged and the event is lost.
func (s *beaconService) publish(ctx context.Context, evt *event.Event) {
	if err := s.publisher.PublishEvent(ctx, evt); err != nil {
		s.logger.Error("failed to publish beacon event",
			slog.String("kind", string(evt.Kind)),
			slog.String("beacon_id", evt.BeaconID.String()),
			slog.String("error", err.Error()),
		)
	}
}
