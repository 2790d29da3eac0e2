package handlers

import (
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecurringHandler struct {
	recurringService *service.RecurringService
	logger           *zap.Logger
}

func NewRecurringHandler(recurringService *service.RecurringService, logger *zap.Logger) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
		logger:           logger,
	}
}

// CreateTemplate godoc
// @Summary Create a recurring template
// @Description Create a recurring template and generate its first window of occurrences
// @Tags recurring
// @Accept json
// @Produce json
// @Param request body dto.CreateRecurringTemplateRequest true "Recurring template request"
// @Security Bearer
// @Success 201 {object} dto.RecurringTemplateCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recurring [post]
func (h *RecurringHandler) CreateTemplate(c *fiber.Ctx) error {
	userID, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateRecurringTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	template, occurrences, err := h.recurringService.CreateTemplate(c.Context(), coupleID, userID, &req)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to create recurring template", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create recurring template",
		})
	}

	now := time.Now()
	return c.Status(fiber.StatusCreated).JSON(dto.RecurringTemplateCreatedResponse{
		Template:    dto.NewRecurringTemplateResponse(template),
		Occurrences: dto.NewOccurrenceResponses(occurrences, now),
	})
}

// ListTemplates godoc
// @Summary List the couple's recurring templates
// @Tags recurring
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.RecurringTemplateResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/recurring [get]
func (h *RecurringHandler) ListTemplates(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	templates, err := h.recurringService.ListTemplates(c.Context(), coupleID)
	if err != nil {
		h.logger.Error("Failed to list recurring templates", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list recurring templates",
		})
	}

	out := make([]dto.RecurringTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, dto.NewRecurringTemplateResponse(t))
	}
	return c.JSON(out)
}

// ListOccurrences godoc
// @Summary List a template's occurrences
// @Tags recurring
// @Produce json
// @Param id path string true "Template ID"
// @Security Bearer
// @Success 200 {array} dto.OccurrenceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recurring/{id}/occurrences [get]
func (h *RecurringHandler) ListOccurrences(c *fiber.Ctx) error {
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

	occurrences, err := h.recurringService.ListOccurrences(c.Context(), coupleID, templateID)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to list occurrences", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list occurrences",
		})
	}

	return c.JSON(dto.NewOccurrenceResponses(occurrences, time.Now()))
}

// GenerateOccurrences godoc
// @Summary Extend a template's schedule
// @Description Generate occurrences up to months_ahead months from today; already-scheduled dates are skipped
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body dto.GenerateOccurrencesRequest false "Generation request"
// @Security Bearer
// @Success 200 {array} dto.OccurrenceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/recurring/{id}/generate [post]
func (h *RecurringHandler) GenerateOccurrences(c *fiber.Ctx) error {
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

	var req dto.GenerateOccurrencesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	occurrences, err := h.recurringService.GenerateOccurrences(c.Context(), coupleID, templateID, req.MonthsAhead)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to generate occurrences", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate occurrences",
		})
	}

	return c.JSON(dto.NewOccurrenceResponses(occurrences, time.Now()))
}

// SetActive godoc
// @Summary Activate or deactivate a template
// @Description An inactive template keeps its pending occurrences but stops generating new ones
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body dto.SetActiveRequest true "Activation request"
// @Security Bearer
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recurring/{id}/active [put]
func (h *RecurringHandler) SetActive(c *fiber.Ctx) error {
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

	if err := h.recurringService.SetActive(c.Context(), coupleID, templateID, req.Active); err != nil {
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

// PayOccurrence godoc
// @Summary Pay an occurrence
// @Description Settle a pending occurrence into a ledger transaction; the transaction date defaults to the due date
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Occurrence ID"
// @Param request body dto.PayEntryRequest false "Payment request"
// @Security Bearer
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/occurrences/{id}/pay [post]
func (h *RecurringHandler) PayOccurrence(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	occurrenceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid occurrence ID",
		})
	}

	transactionDate, err := parsePayRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	occurrence, tx, err := h.recurringService.PayOccurrence(c.Context(), coupleID, occurrenceID, transactionDate)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to pay occurrence", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to pay occurrence",
		})
	}

	occurrenceResp := dto.NewOccurrenceResponse(occurrence, time.Now())
	return c.JSON(dto.PaymentResponse{
		Transaction: dto.NewTransactionResponse(tx),
		Occurrence:  &occurrenceResp,
	})
}

// SkipOccurrence godoc
// @Summary Skip an occurrence
// @Description Mark a pending occurrence as skipped without creating a transaction; allowed even when overdue
// @Tags recurring
// @Produce json
// @Param id path string true "Occurrence ID"
// @Security Bearer
// @Success 200 {object} dto.OccurrenceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/occurrences/{id}/skip [post]
func (h *RecurringHandler) SkipOccurrence(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	occurrenceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid occurrence ID",
		})
	}

	occurrence, err := h.recurringService.SkipOccurrence(c.Context(), coupleID, occurrenceID)
	if err != nil {
		if code, msg, ok := mapDomainError(err); ok {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}
		h.logger.Error("Failed to skip occurrence", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to skip occurrence",
		})
	}

	return c.JSON(dto.NewOccurrenceResponse(occurrence, time.Now()))
}

// parsePayRequest reads the optional settlement body and its optional
// transaction date.
func parsePayRequest(c *fiber.Ctx) (*time.Time, error) {
	if len(c.Body()) == 0 {
		return nil, nil
	}
	var req dto.PayEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.TransactionDate == nil {
		return nil, nil
	}
	date, err := time.Parse(time.DateOnly, *req.TransactionDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid transaction date, expected YYYY-MM-DD")
	}
	return &date, nil
}
