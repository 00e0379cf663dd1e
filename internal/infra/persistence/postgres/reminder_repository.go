package postgres

import (
	"context"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/repository"
	"convoy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reminderRepository implements the repository.ReminderRepository interface using GORM.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// ListEnabled returns every enabled reminder, across all members.
func (repo *reminderRepository) ListEnabled(ctx context.Context) ([]*entity.VehicleReminder, error) {
	var reminderMs []model.VehicleReminderModel

	err := repo.db.WithContext(ctx).
		Where("enabled = ?", true).
		Find(&reminderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enabled reminders")
	}

	reminders := make([]*entity.VehicleReminder, 0, len(reminderMs))
	for i := range reminderMs {
		reminders = append(reminders, model.ToReminderDomain(&reminderMs[i]))
	}

	return reminders, nil
}
