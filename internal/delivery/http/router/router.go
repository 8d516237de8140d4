// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"calshare/internal/delivery/http/middleware"
	"calshare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CalendarHandler *handler.CalendarHandler
	ShareHandler    *handler.ShareHandler
	FeedHandler     *handler.FeedHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	calendarHandler *handler.CalendarHandler
	shareHandler    *handler.ShareHandler
	feedHandler     *handler.FeedHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		calendarHandler: params.CalendarHandler,
		shareHandler:    params.ShareHandler,
		feedHandler:     params.FeedHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public feed endpoint; the token in the path is the only credential.
	e.GET("/share/:token", r.feedHandler.Feed)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Calendar management routes, scoped to the authenticated account.
	calendarGroup := e.Group("/calendars")
	calendarGroup.Use(r.authMiddleware.Authenticate)
	{
		calendarGroup.POST("", r.calendarHandler.CreateCalendar)
		calendarGroup.GET("", r.calendarHandler.ListCalendars)
		calendarGroup.POST("/:calendarID/events", r.calendarHandler.CreateEvent)
		calendarGroup.GET("/:calendarID/events", r.calendarHandler.ListEvents)
	}

	// Share-link management routes.
	shareGroup := e.Group("/shares")
	shareGroup.Use(r.authMiddleware.Authenticate)
	{
		shareGroup.POST("", r.shareHandler.CreateShareLink)
		shareGroup.GET("", r.shareHandler.ListShareLinks)
		shareGroup.DELETE("/:shareID", r.shareHandler.DeleteShareLink)
		shareGroup.GET("/:shareID/qrcode", r.shareHandler.ShareLinkQRCode)
	}
}
