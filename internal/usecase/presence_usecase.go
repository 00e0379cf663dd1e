package usecase

import (
	"context"

	"convoy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PresenceUsecase defines the interface for live presence on the shared map.
// Each member's device feeds position samples into a session owned by this
// layer; the session applies home-zone masking and proximity detection.
type PresenceUsecase interface {
	// Ingest routes one position sample into the member's session, starting
	// the session if none is running.
	Ingest(ctx context.Context, userID uuid.UUID, position orb.Point) error

	// ReportPermissionDenied marks the member's location permission as revoked.
	// The session stops and the presence record is removed.
	ReportPermissionDenied(ctx context.Context, userID uuid.UUID) error

	// Stop ends the member's session and removes their presence record. The
	// record is gone before Stop returns.
	Stop(ctx context.Context, userID uuid.UUID) error

	// List returns the current presence table for the map view.
	List(ctx context.Context) ([]entity.PresenceRecord, error)
}
