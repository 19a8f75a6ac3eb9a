// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	categoryController *controller.CategoryController
	expenseController  *controller.ExpenseController
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		categoryController: categoryController,
		expenseController:  expenseController,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	api := r.engine.Group("/api")
	{
		api.GET("/ping", r.healthController.Ping)

		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)

			profile := auth.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.authController.GetProfile)
				profile.PUT("", r.authController.UpdateProfile)
			}
		}

		categories := api.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		expenses := api.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			// Registered before /:id so "stats" is not parsed as an
			// expense id.
			expenses.GET("/stats", r.expenseController.GetStats)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}
	}

	return r.engine
}
