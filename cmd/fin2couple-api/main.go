package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tamicaires/fin2couple-api/internal/api"
	"github.com/tamicaires/fin2couple-api/internal/api/handlers"
	"github.com/tamicaires/fin2couple-api/internal/database"
	"github.com/tamicaires/fin2couple-api/internal/repository"
	"github.com/tamicaires/fin2couple-api/internal/service"
	"github.com/tamicaires/fin2couple-api/pkg/auth"
	"github.com/tamicaires/fin2couple-api/pkg/config"
	"github.com/tamicaires/fin2couple-api/pkg/logger"
	"github.com/tamicaires/fin2couple-api/pkg/postgres"

	"go.uber.org/zap"
)

// @title fin2couple API
// @version 1.0
// @description Shared-finance scheduling and settlement API for couples

// @contact.name API Support
// @contact.email support@fin2couple.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting fin2couple service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	// Initialize repositories
	coupleRepo := repository.NewCoupleRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	recurringRepo := repository.NewRecurringTemplateRepository(db, appLogger)
	occurrenceRepo := repository.NewOccurrenceRepository(db, appLogger)
	installmentTplRepo := repository.NewInstallmentTemplateRepository(db, appLogger)
	installmentRepo := repository.NewInstallmentRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, coupleRepo, jwtManager, appLogger)
	accountService := service.NewAccountService(accountRepo, appLogger)
	transactionService := service.NewTransactionService(txRepo, accountRepo, appLogger)
	recurringService := service.NewRecurringService(recurringRepo, occurrenceRepo, txRepo, accountRepo, cfg.Schedule.DefaultMonthsAhead, appLogger)
	installmentService := service.NewInstallmentService(installmentTplRepo, installmentRepo, txRepo, accountRepo, appLogger)
	scheduleService := service.NewScheduleService(recurringRepo, occurrenceRepo, installmentTplRepo, installmentRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	accountHandler := handlers.NewAccountHandler(accountService, appLogger)
	transactionHandler := handlers.NewTransactionHandler(transactionService, appLogger)
	recurringHandler := handlers.NewRecurringHandler(recurringService, appLogger)
	installmentHandler := handlers.NewInstallmentHandler(installmentService, appLogger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler,
		accountHandler,
		transactionHandler,
		recurringHandler,
		installmentHandler,
		scheduleHandler,
		jwtManager,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
