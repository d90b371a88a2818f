// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/controller"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	categoryController  *controller.CategoryController
	expenseController   *controller.ExpenseController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		categoryController:  categoryController,
		expenseController:   expenseController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
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

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

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
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		// Category routes (require authentication)
		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.GET("/:id", r.categoryController.Get)
			categories.POST("", r.categoryController.Create)
		}

		// Expense routes (require authentication)
		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.PATCH("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		// Dashboard routes (require authentication)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
		}
	}
}
