// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodbridge/internal/delivery/http/middleware"
	"foodbridge/internal/delivery/http/router/handler"
	"foodbridge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	DonorHandler     *handler.DonorHandler
	RecipientHandler *handler.RecipientHandler
	AdminHandler     *handler.AdminHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	donorHandler     *handler.DonorHandler
	recipientHandler *handler.RecipientHandler
	adminHandler     *handler.AdminHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		donorHandler:     params.DonorHandler,
		recipientHandler: params.RecipientHandler,
		adminHandler:     params.AdminHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.Refresh)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Profile routes for any authenticated role
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate())
	{
		profileGroup.GET("", r.accountHandler.GetProfile)
		profileGroup.PUT("", r.accountHandler.UpdateProfile)
	}

	// Donor routes
	donorGroup := e.Group("/donor")
	donorGroup.Use(r.authMiddleware.Authenticate())
	donorGroup.Use(r.authMiddleware.RequireRole(entity.RoleDonor))
	{
		donorGroup.GET("/dashboard", r.donorHandler.GetDashboard)
		donorGroup.POST("/listings", r.donorHandler.CreateListing)
		donorGroup.PUT("/listings/:id", r.donorHandler.UpdateListing)
		donorGroup.POST("/listings/:id/complete", r.donorHandler.CompleteListing)
		donorGroup.POST("/listings/:id/cancel", r.donorHandler.CancelListing)
		donorGroup.POST("/listings/:id/image", r.donorHandler.UploadImage)
		donorGroup.POST("/donations/pickup", r.donorHandler.ConfirmPickup)
		donorGroup.POST("/donations/:id/deliver", r.donorHandler.ConfirmDelivery)
	}

	// Recipient routes
	recipientGroup := e.Group("/recipient")
	recipientGroup.Use(r.authMiddleware.Authenticate())
	recipientGroup.Use(r.authMiddleware.RequireRole(entity.RoleRecipient))
	{
		recipientGroup.GET("/dashboard", r.recipientHandler.GetDashboard)
		recipientGroup.GET("/listings", r.recipientHandler.BrowseListings)
		recipientGroup.POST("/listings/:id/reserve", r.recipientHandler.ReserveListing)
		recipientGroup.POST("/requests", r.recipientHandler.CreateRequest)
		recipientGroup.POST("/requests/:id/fulfill", r.recipientHandler.FulfillRequest)
		recipientGroup.POST("/requests/:id/cancel", r.recipientHandler.CancelRequest)
		recipientGroup.GET("/donations/:id/qr", r.recipientHandler.GetPickupQR)
	}

	// Admin routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate())
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/overview", r.adminHandler.GetOverview)
		adminGroup.GET("/profiles", r.adminHandler.ListProfiles)
		adminGroup.GET("/listings", r.adminHandler.ListListings)
	}

	// Analyst routes
	analyticsGroup := e.Group("/analytics")
	analyticsGroup.Use(r.authMiddleware.Authenticate())
	analyticsGroup.Use(r.authMiddleware.RequireRole(entity.RoleAnalyst))
	{
		analyticsGroup.GET("/overview", r.analyticsHandler.GetOverview)
		analyticsGroup.GET("/impact", r.analyticsHandler.GetImpactMetrics)
		analyticsGroup.GET("/categories", r.analyticsHandler.GetCategoryBreakdown)
		analyticsGroup.GET("/trends", r.analyticsHandler.GetMonthlyTrends)
	}
}
