package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"convoy/internal/domain/entity"
	"convoy/internal/domain/repository"
	"convoy/internal/domain/service"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reminderTypeLabels maps reminder types to the phrase used in push bodies.
var reminderTypeLabels = map[entity.VehicleReminderType]string{
	entity.ReminderTypeInspection:         "technical inspection",
	entity.ReminderTypeFirstAidKit:        "first-aid kit",
	entity.ReminderTypeHighwayVignette:    "highway vignette",
	entity.ReminderTypeLiabilityInsurance: "liability insurance",
}

type reminderService struct {
	reminderRepo repository.ReminderRepository
	userDir      repository.UserDirectory
	dispatcher   usecase.DispatcherUsecase
	logger       *slog.Logger
}

// NewReminderService creates the daily vehicle-deadline sweep. The schedule
// is an external cron contract (daily at 09:00 local); this service only
// evaluates thresholds and delivers.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	userDir repository.UserDirectory,
	dispatcher usecase.DispatcherUsecase,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: reminderRepo,
		userDir:      userDir,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Sweep evaluates every enabled reminder against now. A reminder fires only
// when its remaining days exactly equal one of its type's warning thresholds,
// so the same deadline never fires two days in a row; day zero always fires.
func (s *reminderService) Sweep(ctx context.Context, now time.Time) (*usecase.DeliveryReport, error) {
	reminders, err := s.reminderRepo.ListEnabled(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	type due struct {
		reminder *entity.VehicleReminder
		days     int
	}

	dues := make([]due, 0)
	ownerIDs := make([]uuid.UUID, 0)
	seenOwners := make(map[uuid.UUID]struct{})

	for _, reminder := range reminders {
		days := reminder.DaysUntil(now)
		if days != 0 && !slices.Contains(reminder.Type.WarningDays(), days) {
			continue
		}

		dues = append(dues, due{reminder: reminder, days: days})
		if _, ok := seenOwners[reminder.UserID]; !ok {
			seenOwners[reminder.UserID] = struct{}{}
			ownerIDs = append(ownerIDs, reminder.UserID)
		}
	}

	if len(dues) == 0 {
		return &usecase.DeliveryReport{}, nil
	}

	owners, err := s.userDir.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reminder owners")
	}

	ownersByID := make(map[uuid.UUID]*entity.User, len(owners))
	for _, owner := range owners {
		ownersByID[owner.ID] = owner
	}

	sends := make([]usecase.Send, 0, len(dues))
	for _, d := range dues {
		owner := ownersByID[d.reminder.UserID]
		if owner == nil || !owner.Sendable() {
			continue
		}
		// The category pre-check is the only settings gate on this path;
		// quiet hours are not re-checked for a 09:00 sweep.
		if !owner.Settings.AllowsIgnoringQuietHours(entity.CategoryVehicleReminders) {
			continue
		}

		sends = append(sends, usecase.Send{
			UserID:  owner.ID,
			Token:   owner.DeliveryToken,
			Title:   "Vehicle reminder",
			Body:    reminderBody(d.reminder, d.days),
			Data:    map[string]string{"kind": "vehicle.reminder", "reminder_id": d.reminder.ID.String()},
			Channel: service.ChannelReminders,
		})
	}

	report := s.dispatcher.Dispatch(ctx, sends)

	s.logger.Info("reminder sweep finished",
		slog.Int("due", len(dues)),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

func reminderBody(reminder *entity.VehicleReminder, days int) string {
	label := reminderTypeLabels[reminder.Type]
	if label == "" {
		label = string(reminder.Type)
	}

	if days == 0 {
		return fmt.Sprintf("The %s of %s expires today", label, reminder.VehicleName)
	}

	return fmt.Sprintf("The %s of %s expires in %d days", label, reminder.VehicleName, days)
}
