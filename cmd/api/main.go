// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Stats caching is optional. Without Redis every stats request hits the
	// database.
	var statsCache adapter.StatsCache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis connection failed, stats caching disabled", "error", err)
	} else {
		statsCache = cache.NewStatsCache(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}
	cancelPing()

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, categoryRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, statsCache)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo, categoryRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, statsCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, statsCache)
	getStatsUseCase := expense.NewGetStatsUseCase(expenseRepo, statsCache)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		getProfileUseCase,
		updateProfileUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		getStatsUseCase,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Setup router
	r := router.NewRouter(healthController, authController, categoryController, expenseController, authMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
