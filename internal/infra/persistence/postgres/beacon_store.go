package postgres

import (
	"context"
	"log/slog"
	"time"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/repository"
	"convoy/internal/feed"
	"convoy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const beaconPollInterval = 2 * time.Second

// beaconStore implements the repository.BeaconStore interface using GORM.
type beaconStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewBeaconStore is the constructor for beaconStore.
// It returns the store as a repository.BeaconStore interface, adhering to dependency inversion.
func NewBeaconStore(db *gorm.DB, logger *slog.Logger) repository.BeaconStore {
	return &beaconStore{db: db, logger: logger}
}

// Create persists a new beacon row.
func (store *beaconStore) Create(ctx context.Context, beacon *entity.Beacon) error {
	beaconM := model.FromBeaconDomain(beacon)

	if err := store.db.WithContext(ctx).Create(beaconM).Error; err != nil {
		return errors.Wrap(err, "failed to create beacon")
	}

	return nil
}

// FindByID retrieves a single beacon by its unique ID.
func (store *beaconStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Beacon, error) {
	var beaconM model.BeaconModel

	err := store.db.WithContext(ctx).
		Where("id = ?", id).
		First(&beaconM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBeaconNotFound
		}

		return nil, errors.Wrap(err, "failed to find beacon by id")
	}

	return model.ToBeaconDomain(&beaconM), nil
}

// FindOpenByUser returns the user's open beacon, if any. The table only holds
// live beacons, so open means any row that is not yet resolved.
func (store *beaconStore) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Beacon, error) {
	var beaconM model.BeaconModel

	err := store.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{
			string(entity.BeaconStatusActive),
			string(entity.BeaconStatusHelpComing),
		}).
		First(&beaconM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBeaconNotFound
		}

		return nil, errors.Wrap(err, "failed to find open beacon by user")
	}

	return model.ToBeaconDomain(&beaconM), nil
}

// ListOpen returns every open beacon, newest first.
func (store *beaconStore) ListOpen(ctx context.Context) ([]*entity.Beacon, error) {
	var beaconMs []model.BeaconModel

	err := store.db.WithContext(ctx).
		Where("status IN ?", []string{
			string(entity.BeaconStatusActive),
			string(entity.BeaconStatusHelpComing),
		}).
		Order("created_at DESC").
		Find(&beaconMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open beacons")
	}

	beacons := make([]*entity.Beacon, 0, len(beaconMs))
	for i := range beaconMs {
		beacons = append(beacons, model.ToBeaconDomain(&beaconMs[i]))
	}

	return beacons, nil
}

// TransactionalUpdate applies the patch with a single conditional UPDATE. The
// status predicate in the WHERE clause is what makes concurrent claims race
// safely: exactly one writer sees RowsAffected == 1.
func (store *beaconStore) TransactionalUpdate(ctx context.Context, id uuid.UUID, expected entity.BeaconStatus, patch repository.BeaconPatch) (*entity.Beacon, error) {
	updates := map[string]any{
		"status":     string(patch.Status),
		"updated_at": time.Now(),
	}
	if patch.HelperID != nil {
		updates["helper_id"] = *patch.HelperID
		updates["helper_name"] = patch.HelperName
	}

	result := store.db.WithContext(ctx).
		Model(&model.BeaconModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update beacon status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a lost race from a vanished beacon.
		if _, err := store.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrBeaconConflict
	}

	return store.FindByID(ctx, id)
}

// Delete removes the beacon row entirely.
func (store *beaconStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := store.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BeaconModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete beacon")
	}

	return nil
}

// Subscribe polls the open set and publishes full snapshots until ctx is done.
func (store *beaconStore) Subscribe(ctx context.Context) (*feed.Feed[[]*entity.Beacon], error) {
	beaconFeed := feed.New[[]*entity.Beacon]()

	go func() {
		defer beaconFeed.Close()

		ticker := time.NewTicker(beaconPollInterval)
		defer ticker.Stop()

		for {
			beacons, err := store.ListOpen(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				store.logger.Warn("beacon snapshot poll failed", slog.String("error", err.Error()))
			} else {
				beaconFeed.Publish(beacons)
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return beaconFeed, nil
}
