// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopradar/internal/delivery/http/middleware"
	"shopradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Paths excluded from request logging.
const (
	HealthPath   = "/health"
	ReadingsPath = "/api/v1/location/readings"
)

type RouterParams struct {
	fx.In

	LocationHandler   *handler.LocationHandler
	ProximityHandler  *handler.ProximityHandler
	ReminderHandler   *handler.ReminderHandler
	FavoriteHandler   *handler.FavoriteHandler
	PreferenceHandler *handler.PreferenceHandler
	SearchHandler     *handler.SearchHandler
	StoreHandler      *handler.StoreHandler
	DirectionsHandler *handler.DirectionsHandler
	SessionHandler    *handler.SessionHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(HealthPath, handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.params.SessionMiddleware.Attach)

	location := apiV1.Group("/location")
	{
		h := r.params.LocationHandler
		location.GET("", h.GetLocation)
		location.GET("/state", h.GetState)
		location.GET("/pending", h.GetPending)
		location.POST("/readings", h.PushReading)
		location.POST("/errors", h.PushError)
		location.PUT("/availability", h.SetAvailability)
	}

	proximity := apiV1.Group("/proximity")
	{
		h := r.params.ProximityHandler
		proximity.GET("", h.GetState)
		proximity.POST("/check", h.Check)
		proximity.POST("/prompts/:storeId/dismiss", h.Dismiss)
		proximity.POST("/prompts/:storeId/view", h.View)
		proximity.GET("/saved", h.GetSavedStores)
		proximity.DELETE("/saved", h.ClearSavedStores)
		proximity.DELETE("/saved/:storeId", h.ClearSavedStore)
	}

	reminders := apiV1.Group("/reminders")
	{
		h := r.params.ReminderHandler
		reminders.GET("", h.ListReminders)
		reminders.POST("", h.CreateReminder)
		reminders.DELETE("", h.ClearReminders)
		reminders.DELETE("/:id", h.DismissReminder)
		reminders.POST("/check", h.Check)
		reminders.POST("/refresh", h.Refresh)
		reminders.GET("/notifications", h.ListNotifications)
		reminders.POST("/notifications/:id/view", h.ViewNotification)
		reminders.POST("/notifications/:id/acknowledge", h.AcknowledgeNotification)
	}

	favorites := apiV1.Group("/favorites")
	{
		h := r.params.FavoriteHandler
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("", h.ClearFavorites)
		favorites.GET("/:productId", h.GetFavoriteStatus)
		favorites.DELETE("/:productId", h.RemoveFavorite)
	}

	apiV1.GET("/preferences", r.params.PreferenceHandler.GetPreferences)
	apiV1.PATCH("/preferences", r.params.PreferenceHandler.UpdatePreferences)

	search := apiV1.Group("/search")
	{
		h := r.params.SearchHandler
		search.GET("", h.Search)
		search.GET("/history", h.GetHistory)
		search.DELETE("/history", h.ClearHistory)
	}

	stores := apiV1.Group("/stores")
	{
		h := r.params.StoreHandler
		stores.GET("", h.ListNearby)
		stores.GET("/recent", h.ListRecentlyViewed)
		stores.POST("/resolve", h.ResolveQR)
		stores.GET("/:id", h.GetStore)
		stores.GET("/:id/qr", h.GetStoreQR)
	}

	apiV1.POST("/directions", r.params.DirectionsHandler.GetDirections)

	session := apiV1.Group("/session")
	{
		h := r.params.SessionHandler
		session.GET("", h.GetSession)
		session.POST("/sign-in", h.SignIn)
		session.POST("/sign-out", h.SignOut, r.params.SessionMiddleware.RequireUser)
		session.PUT("/device-token", h.RegisterDeviceToken)
	}
}
