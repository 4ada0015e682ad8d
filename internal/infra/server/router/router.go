// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/household-expenses/backend/internal/integration/entrypoint/controller"
	"github.com/household-expenses/backend/internal/integration/entrypoint/middleware"
	"github.com/household-expenses/backend/internal/integration/entrypoint/validation"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	personController      *controller.PersonController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	allowedOrigins        []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	personController *controller.PersonController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		personController:      personController,
		categoryController:    categoryController,
		transactionController: transactionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		allowedOrigins:        allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	validation.Init()

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	if len(r.allowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.allowedOrigins))
	}

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/validate", r.authController.Validate)
			}
		}

		// Person routes (require authentication)
		if r.personController != nil && r.authMiddleware != nil {
			people := v1.Group("/people")
			people.Use(r.authMiddleware.Authenticate())
			{
				people.GET("", r.personController.List)
				people.POST("", r.personController.Create)
				people.GET("/summary/totals", r.personController.Summary)
				people.GET("/:id", r.personController.Get)
				people.PUT("/:id", r.personController.Update)
				people.DELETE("/:id", r.personController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.GET("/with-totals", r.categoryController.ListWithTotals)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.POST("/:id/deactivate", r.categoryController.Deactivate)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.POST("/:id/cancel", r.transactionController.Cancel)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
