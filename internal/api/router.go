package api

import (
	"github.com/tamicaires/fin2couple-api/docs"
	"github.com/tamicaires/fin2couple-api/internal/api/handlers"
	"github.com/tamicaires/fin2couple-api/pkg/auth"
	"github.com/tamicaires/fin2couple-api/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	transactionHandler *handlers.TransactionHandler,
	recurringHandler *handlers.RecurringHandler,
	installmentHandler *handlers.InstallmentHandler,
	scheduleHandler *handlers.ScheduleHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger docs are registered through the docs package init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Post("/couples/join", authHandler.JoinCouple)

	accounts := protected.Group("/accounts")
	accounts.Post("", accountHandler.CreateAccount)
	accounts.Get("", accountHandler.ListAccounts)

	transactions := protected.Group("/transactions")
	transactions.Post("", transactionHandler.CreateTransaction)
	transactions.Get("", transactionHandler.ListTransactions)
	transactions.Delete("/:id", transactionHandler.DeleteTransaction)

	recurring := protected.Group("/recurring")
	recurring.Post("", recurringHandler.CreateTemplate)
	recurring.Get("", recurringHandler.ListTemplates)
	recurring.Get("/:id/occurrences", recurringHandler.ListOccurrences)
	recurring.Post("/:id/generate", recurringHandler.GenerateOccurrences)
	recurring.Put("/:id/active", recurringHandler.SetActive)

	occurrences := protected.Group("/occurrences")
	occurrences.Post("/:id/pay", recurringHandler.PayOccurrence)
	occurrences.Post("/:id/skip", recurringHandler.SkipOccurrence)

	installments := protected.Group("/installments")
	installments.Post("", installmentHandler.CreateTemplate)
	installments.Get("", installmentHandler.ListTemplates)
	installments.Get("/:id/entries", installmentHandler.ListInstallments)
	installments.Put("/:id/active", installmentHandler.SetActive)
	installments.Delete("/:id", installmentHandler.DeleteTemplate)

	entries := protected.Group("/installment-entries")
	entries.Post("/:id/pay", installmentHandler.PayInstallment)
	entries.Post("/:id/skip", installmentHandler.SkipInstallment)

	schedule := protected.Group("/schedule")
	schedule.Get("/upcoming", scheduleHandler.Upcoming)
	schedule.Get("/overdue", scheduleHandler.Overdue)

	return app
}
