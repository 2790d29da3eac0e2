package handlers

import (
	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accountService *service.AccountService
	logger         *zap.Logger
}

func NewAccountHandler(accountService *service.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// CreateAccount godoc
// @Summary Create an account
// @Description Create a joint account (no owner) or a personal account for one partner
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account request"
// @Security Bearer
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/accounts [post]
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	account, err := h.accountService.Create(c.Context(), coupleID, &req)
	if err != nil {
		h.logger.Error("Failed to create account", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAccountResponse(account))
}

// ListAccounts godoc
// @Summary List the couple's accounts
// @Tags accounts
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/accounts [get]
func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	accounts, err := h.accountService.List(c.Context(), coupleID)
	if err != nil {
		h.logger.Error("Failed to list accounts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list accounts",
		})
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.NewAccountResponse(a))
	}
	return c.JSON(out)
}
