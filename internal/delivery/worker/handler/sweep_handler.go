package handler

import (
	"log/slog"
	"net/http"
	"time"

	"convoy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SweepHandler triggers the daily vehicle-reminder sweep. The endpoint is
// meant to be hit by a scheduler job once a day, around 09:00 member time.
type SweepHandler struct {
	logger     *slog.Logger
	reminderUC usecase.ReminderUsecase
}

// SweepHandlerParams holds dependencies for the SweepHandler
type SweepHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// NewSweepHandler creates the reminder sweep handler
func NewSweepHandler(params SweepHandlerParams) *SweepHandler {
	return &SweepHandler{
		logger:     params.Logger,
		reminderUC: params.ReminderUC,
	}
}

// HandleSweep runs one reminder sweep against the current date
func (h *SweepHandler) HandleSweep(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.reminderUC.Sweep(ctx, time.Now())
	if err != nil {
		h.logger.Error("[Worker] Reminder sweep failed", slog.Any("error", err))

		// Scheduler retries on 5xx.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, map[string]int{
		"delivered": report.Delivered,
		"failed":    report.Failed,
	})
}
