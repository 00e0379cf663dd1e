package handler

import (
	"log/slog"
	"net/http"

	"convoy/internal/delivery/http/response"
	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// SettingsHandler holds dependencies for notification preference handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// RegisterTokenRequest represents the request body for storing a push token.
// An empty token clears the stored one.
type RegisterTokenRequest struct {
	Token string `json:"token"`
}

// GetNotificationSettings handles retrieving the member's preferences
func (h *SettingsHandler) GetNotificationSettings(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	settings, err := h.settingsUC.GetNotificationSettings(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings retrieved successfully")
}

// UpdateNotificationSettings handles replacing the member's preferences
func (h *SettingsHandler) UpdateNotificationSettings(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var settings entity.NotificationSettings
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := h.settingsUC.UpdateNotificationSettings(c.Request().Context(), userID, &settings); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings updated successfully")
}

// RegisterDeliveryToken handles storing the device's push token
func (h *SettingsHandler) RegisterDeliveryToken(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := h.settingsUC.RegisterDeliveryToken(c.Request().Context(), userID, req.Token); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token registered"}, "Token registered successfully")
}

// getUserID extracts the calling member's ID from the request headers
func (h *SettingsHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Request().Header.Get(HeaderUserID))
	if err != nil {
		return uuid.Nil, response.Unauthorized(c, "INVALID_USER", "Missing or invalid member ID header")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *SettingsHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
