// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	PromotionHandler *handler.PromotionHandler
	VendorHandler    *handler.VendorHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	orderHandler     *handler.OrderHandler
	promotionHandler *handler.PromotionHandler
	vendorHandler    *handler.VendorHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		orderHandler:     params.OrderHandler,
		promotionHandler: params.PromotionHandler,
		vendorHandler:    params.VendorHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/home", r.catalogHandler.GetHome)
		catalogGroup.GET("/categories", r.catalogHandler.GetCategories)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
	}

	// Orders are filtered per actor inside the use case
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	apiV1.GET("/boost-plans", r.promotionHandler.ListBoostPlans)

	vendorGroup := apiV1.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/dashboard", r.vendorHandler.GetDashboard)
		vendorGroup.POST("/boost-requests", r.promotionHandler.RequestBoost)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/vendors/:id/stats", r.vendorHandler.GetVendorStats)
		adminGroup.POST("/boost-requests/:id/approve", r.promotionHandler.ApproveBoostRequest)
		adminGroup.POST("/boost-requests/:id/reject", r.promotionHandler.RejectBoostRequest)
	}
}
