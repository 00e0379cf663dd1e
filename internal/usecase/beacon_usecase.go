package usecase

import (
	"context"

	"convoy/internal/domain/entity"
	"convoy/internal/feed"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateBeaconInput carries the distressed member's request for help.
type CreateBeaconInput struct {
	UserID      uuid.UUID
	Kind        entity.BeaconKind
	Description string
	Position    orb.Point
}

// BeaconUsecase defines the interface for the emergency beacon state machine
type BeaconUsecase interface {
	// Create opens a new beacon in the active state. A member may hold at most
	// one open beacon; a second create is rejected.
	Create(ctx context.Context, input CreateBeaconInput) (*entity.Beacon, error)

	// Respond claims an active beacon for the helper. Exactly one concurrent
	// responder wins; the rest receive a conflict.
	Respond(ctx context.Context, beaconID, helperID uuid.UUID) (*entity.Beacon, error)

	// Resolve closes the beacon and removes its record. Only the creator or
	// the recorded helper may resolve.
	Resolve(ctx context.Context, beaconID, actorID uuid.UUID) error

	// VisibleTo returns the open beacons a viewer should see: all except their
	// own, within the visibility radius of viewerPos. A nil viewerPos means
	// the viewer's position is unknown and the filter fails open.
	VisibleTo(ctx context.Context, viewerID uuid.UUID, viewerPos *orb.Point) ([]*entity.Beacon, error)

	// Watch returns a live stream of the beacons visible to the viewer,
	// filtered the same way VisibleTo filters. Snapshots are latest-wins;
	// the stream closes when ctx ends or the underlying feed closes.
	Watch(ctx context.Context, viewerID uuid.UUID, viewerPos *orb.Point) (*feed.Feed[[]*entity.Beacon], error)
}
