// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"convoy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PresenceHandler *handler.PresenceHandler
	BeaconHandler   *handler.BeaconHandler
	SettingsHandler *handler.SettingsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	presenceHandler *handler.PresenceHandler
	beaconHandler   *handler.BeaconHandler
	settingsHandler *handler.SettingsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		presenceHandler: params.PresenceHandler,
		beaconHandler:   params.BeaconHandler,
		settingsHandler: params.SettingsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Live presence on the shared map
	presenceGroup := e.Group("/presence")
	{
		presenceGroup.POST("/samples", r.presenceHandler.IngestSample)
		presenceGroup.POST("/stop", r.presenceHandler.StopSharing)
		presenceGroup.GET("", r.presenceHandler.ListPresence)
	}

	// Emergency beacons
	beaconGroup := e.Group("/beacons")
	{
		beaconGroup.POST("", r.beaconHandler.CreateBeacon)
		beaconGroup.GET("", r.beaconHandler.ListBeacons)
		beaconGroup.GET("/stream", r.beaconHandler.StreamBeacons)
		beaconGroup.POST("/:id/respond", r.beaconHandler.RespondToBeacon)
		beaconGroup.POST("/:id/resolve", r.beaconHandler.ResolveBeacon)
	}

	// Notification preferences
	settingsGroup := e.Group("/settings")
	{
		settingsGroup.GET("/notifications", r.settingsHandler.GetNotificationSettings)
		settingsGroup.PUT("/notifications", r.settingsHandler.UpdateNotificationSettings)
		settingsGroup.PUT("/token", r.settingsHandler.RegisterDeliveryToken)
	}
}
