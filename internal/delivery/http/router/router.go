// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"railbook/internal/delivery/http/middleware"
	"railbook/internal/delivery/http/router/handler"
	"railbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	TrainHandler        *handler.TrainHandler
	BookingHandler      *handler.BookingHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	trainHandler        *handler.TrainHandler
	bookingHandler      *handler.BookingHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		trainHandler:        params.TrainHandler,
		bookingHandler:      params.BookingHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application. The paths
// match what the existing web client calls.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Account routes
	e.POST("/create_ac", r.accountHandler.CreateAccount)
	e.POST("/login", r.accountHandler.Login)

	// Train catalog
	e.GET("/trains", r.trainHandler.ListTrains)
	e.GET("/cities", r.trainHandler.ListCities)

	// Booking flow
	e.POST("/bookings", r.bookingHandler.CreateBooking)
	e.GET("/invoice/:booking_id", r.bookingHandler.Invoice)

	// Routes that require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.accountHandler.Profile)
	}
}
