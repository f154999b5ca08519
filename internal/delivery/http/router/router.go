// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"influencerhub/internal/delivery/http/middleware"
	"influencerhub/internal/delivery/http/router/handler"
	"influencerhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CampaignHandler *handler.CampaignHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	campaignHandler *handler.CampaignHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		campaignHandler: params.CampaignHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, all public
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/send-otp", r.authHandler.SendOTP)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
	}

	// Campaign routes: listing is public, creation is brand-only and
	// applications are creator-scoped.
	campaignGroup := e.Group("/campaigns")
	{
		campaignGroup.GET("", r.campaignHandler.List)
		campaignGroup.POST("", r.campaignHandler.Create,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleBrand))

		campaignGroup.GET("/applications", r.campaignHandler.ListApplications,
			r.authMiddleware.Authenticate)
		campaignGroup.POST("/applications", r.campaignHandler.Apply,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleCreator))
	}

	// Profile routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}
}
