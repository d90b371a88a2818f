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
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/config"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/auth"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/category"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/dashboard"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/expense"
	"github.com/mohamedahmede/expense-tracker-lite/internal/infra/db"
	"github.com/mohamedahmede/expense-tracker-lite/internal/infra/server/router"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/adapters"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/controller"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/middleware"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/persistence"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/persistence/blobstore"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage_driver", cfg.Storage.Driver,
	)

	// Initialize the blob store backend
	store, cleanup, err := newBlobStore(&cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(store)
	categoryRepo := persistence.NewCategoryRepository(store)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	converter := adapters.NewExchangeRateService(
		cfg.Rates.URL,
		cfg.Rates.ReportingCurrency,
		cfg.Rates.Timeout,
		cfg.Rates.CacheTTL,
	)

	// The demo password is hashed once at startup so the plain text is
	// never kept around or compared directly.
	demoPasswordHash, err := passwordService.HashPassword(cfg.Auth.DemoPassword)
	if err != nil {
		slog.Error("Failed to hash demo password", "error", err)
		os.Exit(1)
	}

	// Create use cases
	loginUseCase := auth.NewLoginUserUseCase(
		cfg.Auth.DemoEmail,
		cfg.Auth.DemoName,
		demoPasswordHash,
		passwordService,
		tokenService,
	)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo, converter)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, categoryRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, converter)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	summaryUseCase := dashboard.NewGetSummaryUseCase(expenseRepo, decimal.NewFromFloat(cfg.Dashboard.Income))

	// Create controllers and middleware
	healthController := controller.NewHealthController(store)
	authController := controller.NewAuthController(loginUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, getCategoryUseCase, createCategoryUseCase)
	expenseController := controller.NewExpenseController(
		addExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	dashboardController := controller.NewDashboardController(summaryUseCase)
	loginRateLimiter := middleware.NewRateLimiter(cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)
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

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newBlobStore builds the configured storage backend and returns it with a
// cleanup function for whatever connection it holds.
func newBlobStore(cfg *config.StorageConfig) (adapter.BlobStore, func(), error) {
	switch cfg.Driver {
	case "redis":
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		client := goredis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}

		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}
		return blobstore.NewRedisStore(client), cleanup, nil

	case "sqlite":
		database, err := db.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return blobstore.NewSQLiteStore(database.DB()), cleanup, nil

	case "memory":
		return blobstore.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
