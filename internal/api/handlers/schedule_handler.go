package handlers

import (
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	logger          *zap.Logger
}

func NewScheduleHandler(scheduleService *service.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Upcoming godoc
// @Summary List upcoming entries
// @Description Pending occurrences and installments due within the next days, across both kinds
// @Tags schedule
// @Produce json
// @Param days query int false "Window in days" default(30)
// @Security Bearer
// @Success 200 {object} dto.ScheduleResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/schedule/upcoming [get]
func (h *ScheduleHandler) Upcoming(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	days := c.QueryInt("days", 30)
	if days <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Days must be positive",
		})
	}

	schedule, err := h.scheduleService.Upcoming(c.Context(), coupleID, days)
	if err != nil {
		h.logger.Error("Failed to build upcoming schedule", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build upcoming schedule",
		})
	}

	now := time.Now()
	return c.JSON(dto.ScheduleResponse{
		Occurrences:  dto.NewOccurrenceResponses(schedule.Occurrences, now),
		Installments: dto.NewInstallmentResponses(schedule.Installments, now),
	})
}

// Overdue godoc
// @Summary List overdue entries
// @Description Pending occurrences and installments past the 30-day payment window
// @Tags schedule
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ScheduleResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/schedule/overdue [get]
func (h *ScheduleHandler) Overdue(c *fiber.Ctx) error {
	_, coupleID, err := identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	schedule, err := h.scheduleService.Overdue(c.Context(), coupleID)
	if err != nil {
		h.logger.Error("Failed to build overdue schedule", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build overdue schedule",
		})
	}

	now := time.Now()
	return c.JSON(dto.ScheduleResponse{
		Occurrences:  dto.NewOccurrenceResponses(schedule.Occurrences, now),
		Installments: dto.NewInstallmentResponses(schedule.Installments, now),
	})
}
