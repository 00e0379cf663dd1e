package repository

import (
	"context"
	"errors"

	"convoy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a member is not found.
var ErrUserNotFound = errors.New("user not found")

// UserDirectory is the read-mostly lookup of member identity, delivery token
// and notification settings. Account CRUD lives outside this core; the
// directory only exposes what the presence and notification pipelines need.
type UserDirectory interface {
	// FindByID retrieves a single member by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves the given members, skipping unknown IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindWithCategoryEnabled returns all members whose master switch and the
	// given category toggle are both on. Used for broadcast-style triggers.
	FindWithCategoryEnabled(ctx context.Context, category entity.Category) ([]*entity.User, error)

	// FindWantingEventType returns all members subscribed to new events of the
	// given type.
	FindWantingEventType(ctx context.Context, eventType string) ([]*entity.User, error)

	// UpdateSettings replaces the member's notification settings.
	UpdateSettings(ctx context.Context, userID uuid.UUID, settings *entity.NotificationSettings) error

	// UpdateDeliveryToken replaces the member's push address. An empty token
	// clears it; the dispatcher reports stale tokens so callers can do this.
	UpdateDeliveryToken(ctx context.Context, userID uuid.UUID, token string) error

	// ClearDeliveryToken removes the given push address from whichever member
	// holds it. Used when the transport reports a token as unregistered.
	ClearDeliveryToken(ctx context.Context, token string) error
}
