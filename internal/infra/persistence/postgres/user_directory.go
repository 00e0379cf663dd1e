package postgres

import (
	"context"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/repository"
	"convoy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userDirectory implements the repository.UserDirectory interface using GORM.
// Category filters run against the jsonb settings column so broadcast triggers
// never load members who opted out.
type userDirectory struct {
	db *gorm.DB
}

// NewUserDirectory is the constructor for userDirectory.
func NewUserDirectory(db *gorm.DB) repository.UserDirectory {
	return &userDirectory{db: db}
}

// FindByID retrieves a single member by their unique ID.
func (dir *userDirectory) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := dir.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return model.ToUserDomain(&userM)
}

// FindByIDs retrieves the given members. Unknown IDs are skipped rather than
// treated as errors; recipient lists routinely reference departed members.
func (dir *userDirectory) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var userMs []model.UserModel

	err := dir.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	return toUserDomains(userMs)
}

// FindWithCategoryEnabled returns all members whose master switch and the
// given category toggle are both on.
func (dir *userDirectory) FindWithCategoryEnabled(ctx context.Context, category entity.Category) ([]*entity.User, error) {
	var userMs []model.UserModel

	err := dir.db.WithContext(ctx).
		Where("settings ->> 'enabled' = 'true' AND settings ->> ? = 'true'", string(category)).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users with category enabled")
	}

	return toUserDomains(userMs)
}

// FindWantingEventType returns all members subscribed to new events of the
// given type, with the master switch and the new-events toggle both on.
func (dir *userDirectory) FindWantingEventType(ctx context.Context, eventType string) ([]*entity.User, error) {
	var userMs []model.UserModel

	err := dir.db.WithContext(ctx).
		Where("settings ->> 'enabled' = 'true'").
		Where("settings -> 'new_events' ->> 'enabled' = 'true'").
		Where("jsonb_exists(settings -> 'new_events' -> 'types', ?)", eventType).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users wanting event type")
	}

	return toUserDomains(userMs)
}

// UpdateSettings replaces the member's notification settings document.
func (dir *userDirectory) UpdateSettings(ctx context.Context, userID uuid.UUID, settings *entity.NotificationSettings) error {
	raw, err := model.FromSettingsDomain(settings)
	if err != nil {
		return err
	}

	result := dir.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("settings", raw)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateDeliveryToken replaces the member's push address.
func (dir *userDirectory) UpdateDeliveryToken(ctx context.Context, userID uuid.UUID, token string) error {
	result := dir.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("delivery_token", token)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearDeliveryToken removes a rejected push address wherever it is stored.
func (dir *userDirectory) ClearDeliveryToken(ctx context.Context, token string) error {
	result := dir.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("delivery_token = ?", token).
		Update("delivery_token", "")
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear delivery token")
	}

	return nil
}

func toUserDomains(userMs []model.UserModel) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		user, err := model.ToUserDomain(&userMs[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
