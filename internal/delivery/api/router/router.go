// Package router wires the API handlers onto echo routes.
package router

import (
	"muslimapp/internal/delivery/api/middleware"
	"muslimapp/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler    *handler.DeviceHandler
	PrayerHandler    *handler.PrayerHandler
	CalendarHandler  *handler.CalendarHandler
	APIKeyMiddleware *middleware.APIKeyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler    *handler.DeviceHandler
	prayerHandler    *handler.PrayerHandler
	calendarHandler  *handler.CalendarHandler
	apiKeyMiddleware *middleware.APIKeyMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:    params.DeviceHandler,
		prayerHandler:    params.PrayerHandler,
		calendarHandler:  params.CalendarHandler,
		apiKeyMiddleware: params.APIKeyMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check stays open for probes
	e.GET("/health", handler.HealthCheck)

	auth := r.apiKeyMiddleware.Authenticate

	deviceGroup := e.Group("/device", auth)
	{
		deviceGroup.POST("/register", r.deviceHandler.RegisterDevice)
		deviceGroup.PUT("/:token/preferences", r.deviceHandler.UpdatePreferences)
		deviceGroup.GET("/:token", r.deviceHandler.GetDevice)
		deviceGroup.DELETE("/:token", r.deviceHandler.UnregisterDevice)
	}

	e.GET("/prayer/today", r.prayerHandler.GetPrayerToday, auth)
	e.GET("/qibla", r.prayerHandler.GetQibla, auth)
	e.GET("/calendar/hijri", r.calendarHandler.GetHijriDate, auth)

	eventsGroup := e.Group("/events", auth)
	{
		eventsGroup.GET("", r.calendarHandler.ListEvents)
		eventsGroup.GET("/upcoming", r.calendarHandler.UpcomingEvents)
	}
}
