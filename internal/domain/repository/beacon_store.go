package repository

import (
	"context"
	"errors"

	"convoy/internal/domain/entity"
	"convoy/internal/feed"

	"github.com/google/uuid"
)

// Domain-specific errors for beacon persistence.
var (
	// ErrBeaconNotFound is returned when a beacon does not exist.
	ErrBeaconNotFound = errors.New("beacon not found")
	// ErrBeaconConflict is returned when a conditional update lost the race:
	// the beacon's current status did not match the expected one.
	ErrBeaconConflict = errors.New("beacon status conflict")
)

// BeaconPatch carries the fields a transition is allowed to change.
type BeaconPatch struct {
	Status     entity.BeaconStatus
	HelperID   *uuid.UUID
	HelperName string
}

// BeaconStore persists emergency beacons. The conditional update is the one
// operation in this core requiring a linearizable read-modify-write; the
// implementation must guarantee single-winner semantics across processes.
type BeaconStore interface {
	// Create persists a new beacon.
	Create(ctx context.Context, beacon *entity.Beacon) error

	// FindByID retrieves a beacon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Beacon, error)

	// FindOpenByUser returns the user's beacon in an open state (active or
	// help_coming), or ErrBeaconNotFound.
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Beacon, error)

	// ListOpen returns all open beacons.
	ListOpen(ctx context.Context) ([]*entity.Beacon, error)

	// TransactionalUpdate applies the patch only if the beacon's current
	// status equals expected. Returns ErrBeaconConflict when another writer
	// committed first, ErrBeaconNotFound when the beacon is gone.
	TransactionalUpdate(ctx context.Context, id uuid.UUID, expected entity.BeaconStatus, patch BeaconPatch) (*entity.Beacon, error)

	// Delete removes the beacon row entirely. Resolved beacons are deleted,
	// not archived, to keep the live feed small.
	Delete(ctx context.Context, id uuid.UUID) error

	// Subscribe returns a live stream of open-beacon snapshots, latest-wins.
	Subscribe(ctx context.Context) (*feed.Feed[[]*entity.Beacon], error)
}
