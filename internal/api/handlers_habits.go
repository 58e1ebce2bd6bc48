package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tannerhall/hearth/internal/services"
)

type habitRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	Cadence      string `json:"cadence"`
	Weekdays     []int  `json:"weekdays"`
	WeeklyTarget int    `json:"weekly_target"`
}

func (req habitRequest) toInput() services.HabitInput {
	return services.HabitInput{
		Name:         req.Name,
		Description:  req.Description,
		Color:        req.Color,
		Icon:         req.Icon,
		Cadence:      req.Cadence,
		Weekdays:     req.Weekdays,
		WeeklyTarget: req.WeeklyTarget,
	}
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	req := habitRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	habit, err := handler.habits.CreateHabit(user, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	habits, err := handler.habits.ListFamilyHabits(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(habits)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	habitID, err := c.ParamsInt("id")
	if err != nil || habitID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid habit id"})
	}

	req := habitRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	habit, err := handler.habits.UpdateHabit(user, uint(habitID), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	habitID, err := c.ParamsInt("id")
	if err != nil || habitID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid habit id"})
	}

	if err := handler.habits.DeleteHabit(user, uint(habitID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

type reorderRequest struct {
	Direction string `json:"direction"`
}

func (handler *Handler) ReorderHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	habitID, err := c.ParamsInt("id")
	if err != nil || habitID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid habit id"})
	}

	req := reorderRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := handler.habits.ReorderHabit(user, uint(habitID), req.Direction); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

type reorderBatchRequest struct {
	Habits []services.ReorderUpdate `json:"habits"`
}

func (handler *Handler) ReorderHabitsBatch(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	req := reorderBatchRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := handler.habits.ReorderHabitsBatch(user, req.Habits); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
