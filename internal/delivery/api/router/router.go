// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/telemetry"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	SettingsHandler *handler.SettingsHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Telemetry       *telemetry.Telemetry
	Config          *config.Config
	Logger          *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	settingsHandler *handler.SettingsHandler
	authMiddleware  *middleware.AuthMiddleware
	telemetry       *telemetry.Telemetry
	config          *config.Config
	logger          *slog.Logger
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		settingsHandler: params.SettingsHandler,
		authMiddleware:  params.AuthMiddleware,
		telemetry:       params.Telemetry,
		config:          params.Config,
		logger:          params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.telemetry.MetricsHandler))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public catalog
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	// Guest checkout is anonymous and limited per client IP
	guestLimiter := middleware.NewGuestRateLimiter(r.config.RateLimit.GuestOrders, r.logger)
	e.POST("/orders/guest", r.orderHandler.CreateGuestOrder, guestLimiter)

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/receipt.png", r.orderHandler.GetReceiptQR)

		requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrderStatus, requireAdmin)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder, requireAdmin)
		ordersGroup.GET("/:id/events", r.orderHandler.ListOrderEvents, requireAdmin)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/orders/receipt-lookup", r.orderHandler.LookupReceipt)
		adminGroup.GET("/users", r.userHandler.ListUsers)

		adminGroup.POST("/categories", r.catalogHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.catalogHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)

		adminGroup.GET("/products", r.catalogHandler.ListAllProducts)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		adminGroup.GET("/settings", r.settingsHandler.GetSettings)
		adminGroup.PUT("/settings", r.settingsHandler.UpdateSettings)
	}
}
