package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"convoy/internal/delivery/http/response"
	"convoy/internal/domain/entity"
	domainerrors "convoy/internal/domain/errors"
	"convoy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BeaconHandlerParams holds dependencies for BeaconHandler, injected by Fx.
type BeaconHandlerParams struct {
	fx.In

	BeaconUC usecase.BeaconUsecase
	Logger   *slog.Logger
}

// BeaconHandler holds dependencies for emergency beacon handlers
type BeaconHandler struct {
	beaconUC usecase.BeaconUsecase
	logger   *slog.Logger
}

// NewBeaconHandler is the constructor for BeaconHandler
func NewBeaconHandler(params BeaconHandlerParams) *BeaconHandler {
	return &BeaconHandler{
		beaconUC: params.BeaconUC,
		logger:   params.Logger,
	}
}

// CreateBeaconRequest represents the request body for raising a beacon
type CreateBeaconRequest struct {
	Kind        string  `json:"kind" validate:"required"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}

// ListBeaconsRequest represents the query parameters for the beacon map view
type ListBeaconsRequest struct {
	Latitude  *float64 `query:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `query:"longitude" validate:"omitempty,min=-180,max=180"`
}

// CreateBeacon handles raising a new emergency beacon
func (h *BeaconHandler) CreateBeacon(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req CreateBeaconRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid beacon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateBeaconInput{
		UserID:      userID,
		Kind:        entity.BeaconKind(req.Kind),
		Description: req.Description,
		Position:    orb.Point{req.Longitude, req.Latitude},
	}

	beacon, err := h.beaconUC.Create(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, beacon, "Beacon created successfully")
}

// RespondToBeacon handles a member committing to help
func (h *BeaconHandler) RespondToBeacon(c echo.Context) error {
	helperID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	beaconID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid beacon ID")
	}

	beacon, err := h.beaconUC.Respond(c.Request().Context(), beaconID, helperID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, beacon, "Beacon claimed successfully")
}

// ResolveBeacon handles closing a beacon
func (h *BeaconHandler) ResolveBeacon(c echo.Context) error {
	actorID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	beaconID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid beacon ID")
	}

	if err := h.beaconUC.Resolve(c.Request().Context(), beaconID, actorID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Beacon resolved"}, "Beacon resolved successfully")
}

// ListBeacons handles the map view of open beacons near the viewer
func (h *BeaconHandler) ListBeacons(c echo.Context) error {
	viewerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req ListBeaconsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var viewerPos *orb.Point
	if req.Latitude != nil && req.Longitude != nil {
		viewerPos = &orb.Point{*req.Longitude, *req.Latitude}
	}

	beacons, err := h.beaconUC.VisibleTo(c.Request().Context(), viewerID, viewerPos)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, beacons, "Beacons retrieved successfully")
}

// StreamBeacons pushes live beacon snapshots to the map view over
// server-sent events until the client disconnects.
func (h *BeaconHandler) StreamBeacons(c echo.Context) error {
	viewerID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req ListBeaconsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var viewerPos *orb.Point
	if req.Latitude != nil && req.Longitude != nil {
		viewerPos = &orb.Point{*req.Longitude, *req.Latitude}
	}

	ctx := c.Request().Context()

	snapshots, err := h.beaconUC.Watch(ctx, viewerID, viewerPos)
	if err != nil {
		return h.handleAppError(c, err)
	}
	defer snapshots.Close()

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-snapshots.Updates():
			if !ok {
				return nil
			}

			data, err := json.Marshal(snapshot)
			if err != nil {
				h.logger.Error("failed to encode beacon snapshot",
					slog.String("error", err.Error()),
				)

				continue
			}

			if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", data); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}

// getUserID extracts the calling member's ID from the request headers
func (h *BeaconHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Request().Header.Get(HeaderUserID))
	if err != nil {
		return uuid.Nil, response.Unauthorized(c, "INVALID_USER", "Missing or invalid member ID header")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *BeaconHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
