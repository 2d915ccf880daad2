// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"privy/config"
	"privy/internal/delivery/http/middleware"
	"privy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	IdentityHandler     *handler.IdentityHandler
	RestroomHandler     *handler.RestroomHandler
	ReviewHandler       *handler.ReviewHandler
	SavedHandler        *handler.SavedHandler
	TestHandler         *handler.TestHandler
	LoggerMiddleware    *middleware.LoggerMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	config              *config.Config
	identityHandler     *handler.IdentityHandler
	restroomHandler     *handler.RestroomHandler
	reviewHandler       *handler.ReviewHandler
	savedHandler        *handler.SavedHandler
	testHandler         *handler.TestHandler
	loggerMiddleware    *middleware.LoggerMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		config:              params.Config,
		identityHandler:     params.IdentityHandler,
		restroomHandler:     params.RestroomHandler,
		reviewHandler:       params.ReviewHandler,
		savedHandler:        params.SavedHandler,
		testHandler:         params.TestHandler,
		loggerMiddleware:    params.LoggerMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device identity routes
	identityGroup := e.Group("/identity")
	{
		identityGroup.POST("/bootstrap", r.identityHandler.Bootstrap)
		identityGroup.GET("/profile", r.identityHandler.GetProfile)
		identityGroup.PATCH("/profile", r.identityHandler.UpdateProfile)
		identityGroup.POST("/profile/image", r.identityHandler.UploadProfileImage)
		identityGroup.GET("/onboarding", r.identityHandler.OnboardingStatus)
	}

	// Restroom directory routes
	restroomGroup := e.Group("/restrooms")
	{
		restroomGroup.GET("", r.restroomHandler.ListRestrooms)
		restroomGroup.POST("", r.restroomHandler.SubmitRestroom)
		restroomGroup.GET("/nearby", r.restroomHandler.Nearby)
		restroomGroup.GET("/:id", r.restroomHandler.GetRestroom)
		restroomGroup.GET("/:id/qr", r.restroomHandler.DirectionsQR)
		restroomGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		restroomGroup.POST("/:id/reviews", r.reviewHandler.SubmitReview)
		restroomGroup.POST("/:id/save", r.savedHandler.ToggleSave)
	}

	// Per-device collections
	deviceGroup := e.Group("/devices/me")
	{
		deviceGroup.GET("/added", r.restroomHandler.ListAdded)
		deviceGroup.GET("/saved", r.restroomHandler.ListSaved)
	}

	// Test routes for middleware validation, disabled outside development
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/error", r.testHandler.TestErrorEndpoint)
		}
	}
}
