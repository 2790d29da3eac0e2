package handlers

import (
	"errors"

	"github.com/tamicaires/fin2couple-api/internal/models"
	"github.com/tamicaires/fin2couple-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// mapDomainError translates the scheduling errors into HTTP responses.
// Returns false when the error is not a domain error and the caller should
// treat it as internal.
func mapDomainError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, models.ErrAlreadyPaid):
		return fiber.StatusConflict, "Entry is already paid", true
	case errors.Is(err, models.ErrAlreadySkipped):
		return fiber.StatusConflict, "Entry was skipped", true
	case errors.Is(err, models.ErrOverdue):
		return fiber.StatusUnprocessableEntity, "Entry is more than 30 days overdue and can no longer be paid", true
	case errors.Is(err, models.ErrTemplateInactive):
		return fiber.StatusUnprocessableEntity, "Template is inactive", true
	case errors.Is(err, models.ErrInvalidRule):
		return fiber.StatusBadRequest, "Invalid recurrence rule", true
	case errors.Is(err, models.ErrInvalidInstallmentCount):
		return fiber.StatusBadRequest, "Installment count must be between 2 and 120", true
	case errors.Is(err, models.ErrInvalidAmount):
		return fiber.StatusBadRequest, "Amount must be positive", true
	case errors.Is(err, service.ErrInvalidDate):
		return fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", true
	case errors.Is(err, service.ErrAccountNotFound):
		return fiber.StatusNotFound, "Account not found", true
	case errors.Is(err, service.ErrTemplateNotFound):
		return fiber.StatusNotFound, "Template not found", true
	case errors.Is(err, service.ErrEntryNotFound):
		return fiber.StatusNotFound, "Entry not found", true
	}
	return 0, "", false
}
