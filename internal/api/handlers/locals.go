package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uuid.Parse(userIDStr)
}

func getCoupleID(c *fiber.Ctx) (uuid.UUID, error) {
	coupleIDStr, ok := c.Locals("coupleID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return uuid.Parse(coupleIDStr)
}

// identity pulls both ids together; almost every protected handler needs the
// couple scope.
func identity(c *fiber.Ctx) (userID, coupleID uuid.UUID, err error) {
	userID, err = getUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	coupleID, err = getCoupleID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, coupleID, nil
}
