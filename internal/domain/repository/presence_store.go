// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"convoy/internal/domain/entity"
	"convoy/internal/feed"

	"github.com/google/uuid"
)

// PresenceStore is the key-value table of live positions, addressed by member
// ID. Writes are idempotent overwrites; exactly one session (the owning
// device) writes a given record, all others only read.
type PresenceStore interface {
	// Upsert creates or overwrites the member's presence record.
	Upsert(ctx context.Context, record *entity.PresenceRecord) error

	// Delete removes the member's presence record. Deleting an absent record
	// is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error

	// Snapshot returns the current full table of presence records.
	Snapshot(ctx context.Context) ([]entity.PresenceRecord, error)

	// Subscribe returns a live stream of full snapshots. Each element is a
	// whole-table replace, never an incremental diff; consumers compute their
	// own deltas. The feed is latest-wins and must be closed by cancelling ctx.
	Subscribe(ctx context.Context) (*feed.Feed[[]entity.PresenceRecord], error)
}
