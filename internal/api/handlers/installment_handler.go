package handlers

import (
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InstallmentHandler struct {
	installmentService *service.InstallmentService
	logger             *zap.Logger
}

func NewInstallmentHandler(installmentService *service.InstallmentService, logger *zap.Logger) *InstallmentHandler {
	return &InstallmentHandler{
		installmentService: installmentService,
		logger:             logger,
	}
}

// CreateTemplate godoc
// @Summary Create an installment template
// @Description Split a purchase into 2-120 monthly installments; the full set is created up front
// @Tags installments
// @Accept json
// @Produce json
// @Param request body dto.CreateInstallmentTemplateRequest true "Installment template request"
// @Security Bearer
// @Success 201 {object} dto.InstallmentTemplateCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/installments [post]
func (h *InstallmentHandler) CreateTemplate(c *fiber.Ctx) error {
	userID, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateInstallmentTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	template, installments, err := h.installmentService.CreateTemplate(c.Context(), coupleID, userID, &req)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to create installment template", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create installment template",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InstallmentTemplateCreatedResponse{
		Template:     dto.NewInstallmentTemplateResponse(template),
		Installments: dto.NewInstallmentResponses(installments, time.Now()),
	})
}

// ListTemplates godoc
// @Summary List the couple's installment templates
// @Tags installments
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.InstallmentTemplateResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/installments [get]
func (h *InstallmentHandler) ListTemplates(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	templates, err := h.installmentService.ListTemplates(c.Context(), coupleID)
	if err != nil {
		h.logger.Error("Failed to list installment templates", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list installment templates",
		})
	}

	out := make([]dto.InstallmentTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, dto.NewInstallmentTemplateResponse(t))
	}
	return c.JSON(out)
}

// ListInstallments godoc
// @Summary List a template's installments
// @Tags installments
// @Produce json
// @Param id path string true "Template ID"
// @Security Bearer
// @Success 200 {array} dto.InstallmentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/installments/{id}/entries [get]
func (h *InstallmentHandler) ListInstallments(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	installments, err := h.installmentService.ListInstallments(c.Context(), coupleID, templateID)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to list installments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list installments",
		})
	}

	return c.JSON(dto.NewInstallmentResponses(installments, time.Now()))
}

// SetActive godoc
// @Summary Activate or deactivate an installment template
// @Tags installments
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body dto.SetActiveRequest true "Activation request"
// @Security Bearer
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/installments/{id}/active [put]
func (h *InstallmentHandler) SetActive(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.installmentService.SetActive(c.Context(), coupleID, templateID, req.Active); err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to update template", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update template",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteTemplate godoc
// @Summary Delete an installment template
// @Description Remove the template and all its installments; settled ledger transactions survive
// @Tags installments
// @Produce json
// @Param id path string true "Template ID"
// @Security Bearer
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/installments/{id} [delete]
func (h *InstallmentHandler) DeleteTemplate(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	if err := h.installmentService.DeleteTemplate(c.Context(), coupleID, templateID); err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to delete template", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete template",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PayInstallment godoc
// @Summary Pay an installment
// @Description Settle a pending installment into a ledger transaction carrying its pre-split amount
// @Tags installments
// @Accept json
// @Produce json
// @Param id path string true "Installment ID"
// @Param request body dto.PayEntryRequest false "Payment request"
// @Security Bearer
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/installment-entries/{id}/pay [post]
func (h *InstallmentHandler) PayInstallment(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	installmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid installment ID",
		})
	}

	transactionDate, err := parsePayRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	installment, tx, err := h.installmentService.PayInstallment(c.Context(), coupleID, installmentID, transactionDate)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to pay installment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to pay installment",
		})
	}

	installmentResp := dto.NewInstallmentResponse(installment, time.Now())
	return c.JSON(dto.PaymentResponse{
		Transaction: dto.NewTransactionResponse(tx),
		Installment: &installmentResp,
	})
}

// SkipInstallment godoc
// @Summary Skip an installment
// @Description Mark a pending installment as skipped without creating a transaction
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Security Bearer
// @Success 200 {object} dto.InstallmentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/installment-entries/{id}/skip [post]
func (h *InstallmentHandler) SkipInstallment(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	installmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid installment ID",
		})
	}

	installment, err := h.installmentService.SkipInstallment(c.Context(), coupleID, installmentID)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to skip installment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to skip installment",
		})
	}

	return c.JSON(dto.NewInstallmentResponse(installment, time.Now()))
}
