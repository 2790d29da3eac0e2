package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/database"
	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/repository"
	"github.com/tamicaires/fin2couple-api/internal/service"
	"github.com/tamicaires/fin2couple-api/pkg/auth"
	"github.com/tamicaires/fin2couple-api/pkg/config"
	"github.com/tamicaires/fin2couple-api/pkg/logger"
	"github.com/tamicaires/fin2couple-api/pkg/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seeds a demo couple with accounts, a recurring rent template and an
// installment purchase, so the API has data to show right after start.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	coupleRepo := repository.NewCoupleRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	recurringRepo := repository.NewRecurringTemplateRepository(db, appLogger)
	occurrenceRepo := repository.NewOccurrenceRepository(db, appLogger)
	installmentTplRepo := repository.NewInstallmentTemplateRepository(db, appLogger)
	installmentRepo := repository.NewInstallmentRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	authService := service.NewAuthService(userRepo, coupleRepo, jwtManager, appLogger)
	accountService := service.NewAccountService(accountRepo, appLogger)
	transactionService := service.NewTransactionService(txRepo, accountRepo, appLogger)
	recurringService := service.NewRecurringService(recurringRepo, occurrenceRepo, txRepo, accountRepo, cfg.Schedule.DefaultMonthsAhead, appLogger)
	installmentService := service.NewInstallmentService(installmentTplRepo, installmentRepo, txRepo, accountRepo, appLogger)

	appLogger.Info("Starting database seeding...")

	alice, err := authService.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			appLogger.Info("Demo data already seeded, nothing to do")
			return
		}
		appLogger.Fatal("Failed to register demo user", zap.Error(err))
	}

	bob, err := authService.Register(ctx, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	if err != nil {
		appLogger.Fatal("Failed to register demo partner", zap.Error(err))
	}

	bobID := uuid.MustParse(bob.User.ID)
	if _, err := authService.JoinCouple(ctx, bobID, alice.InviteCode); err != nil {
		appLogger.Fatal("Failed to join demo couple", zap.Error(err))
	}

	aliceID := uuid.MustParse(alice.User.ID)
	coupleID := uuid.MustParse(alice.User.CoupleID)

	joint, err := accountService.Create(ctx, coupleID, &dto.CreateAccountRequest{Name: "Joint checking"})
	if err != nil {
		appLogger.Fatal("Failed to create joint account", zap.Error(err))
	}
	aliceIDStr := aliceID.String()
	if _, err := accountService.Create(ctx, coupleID, &dto.CreateAccountRequest{
		Name:    "Alice's card",
		OwnerID: &aliceIDStr,
	}); err != nil {
		appLogger.Fatal("Failed to create personal account", zap.Error(err))
	}

	firstOfMonth := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)

	if _, _, err := recurringService.CreateTemplate(ctx, coupleID, aliceID, &dto.CreateRecurringTemplateRequest{
		Description:     "Rent",
		Amount:          decimal.RequireFromString("1500.00"),
		Type:            "expense",
		Category:        "housing",
		AccountID:       joint.ID.String(),
		IsCoupleExpense: true,
		Frequency:       "MONTHLY",
		Interval:        1,
		StartDate:       firstOfMonth.Format(time.DateOnly),
	}); err != nil {
		appLogger.Fatal("Failed to create recurring template", zap.Error(err))
	}

	if _, _, err := installmentService.CreateTemplate(ctx, coupleID, bobID, &dto.CreateInstallmentTemplateRequest{
		Description:       "New sofa",
		TotalAmount:       decimal.RequireFromString("1200.00"),
		TotalInstallments: 12,
		FirstDueDate:      firstOfMonth.AddDate(0, 1, 0).Format(time.DateOnly),
		Type:              "expense",
		Category:          "shopping",
		AccountID:         joint.ID.String(),
		IsCoupleExpense:   true,
	}); err != nil {
		appLogger.Fatal("Failed to create installment template", zap.Error(err))
	}

	if _, err := transactionService.Create(ctx, coupleID, aliceID, &dto.CreateTransactionRequest{
		AccountID:       joint.ID.String(),
		Amount:          decimal.RequireFromString("86.40"),
		Type:            "expense",
		Category:        "food",
		Description:     "Groceries",
		Date:            time.Now().Format(time.DateOnly),
		IsCoupleExpense: true,
	}); err != nil {
		appLogger.Fatal("Failed to create demo transaction", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("couple_id", coupleID.String()),
		zap.String("invite_code", alice.InviteCode),
	)
}
