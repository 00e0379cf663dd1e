package handler

import (
	"log/slog"
	"net/http"

	"convoy/internal/delivery/http/response"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderUserID carries the authenticated member's ID, set by the API gateway.
const HeaderUserID = "X-User-ID"

// PresenceHandlerParams holds dependencies for PresenceHandler, injected by Fx.
type PresenceHandlerParams struct {
	fx.In

	PresenceUC usecase.PresenceUsecase
	Logger     *slog.Logger
}

// PresenceHandler holds dependencies for live presence handlers
type PresenceHandler struct {
	presenceUC usecase.PresenceUsecase
	logger     *slog.Logger
}

// NewPresenceHandler is the constructor for PresenceHandler
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	return &PresenceHandler{
		presenceUC: params.PresenceUC,
		logger:     params.Logger,
	}
}

// SampleRequest represents one device position sample
type SampleRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	// PermissionDenied reports that the device lost location permission.
	// When set the coordinates are ignored.
	PermissionDenied bool `json:"permission_denied"`
}

// IngestSample handles one position sample from a member's device
func (h *PresenceHandler) IngestSample(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req SampleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sample input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	if req.PermissionDenied {
		if err := h.presenceUC.ReportPermissionDenied(ctx, userID); err != nil {
			return h.handleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, nil, "Permission loss recorded")
	}

	if err := h.presenceUC.Ingest(ctx, userID, orb.Point{req.Longitude, req.Latitude}); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Sample accepted")
}

// StopSharing handles a member leaving the shared map
func (h *PresenceHandler) StopSharing(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	if err := h.presenceUC.Stop(c.Request().Context(), userID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Presence removed"}, "Sharing stopped")
}

// ListPresence handles the map view of currently visible members
func (h *PresenceHandler) ListPresence(c echo.Context) error {
	if _, err := h.getUserID(c); err != nil {
		return err
	}

	records, err := h.presenceUC.List(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Presence retrieved successfully")
}

// getUserID extracts the calling member's ID from the request headers
func (h *PresenceHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Request().Header.Get(HeaderUserID))
	if err != nil {
		return uuid.Nil, response.Unauthorized(c, "INVALID_USER", "Missing or invalid member ID header")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *PresenceHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
