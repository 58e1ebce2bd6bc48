package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) MonthlyStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	stats, err := handler.stats.MonthlyStats(user, year, time.Month(month))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
