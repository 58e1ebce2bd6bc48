package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tannerhall/hearth/internal/services"
)

type eventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartAt         time.Time  `json:"start_at"`
	EndAt           time.Time  `json:"end_at"`
	AllDay          bool       `json:"all_day"`
	Color           string     `json:"color"`
	RepeatType      string     `json:"repeat_type"`
	RepeatEndDate   *time.Time `json:"repeat_end_date"`
	ReminderMinutes *int       `json:"reminder_minutes"`
}

func (req eventRequest) toInput() services.EventInput {
	return services.EventInput{
		Title:           req.Title,
		Description:     req.Description,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		AllDay:          req.AllDay,
		Color:           req.Color,
		RepeatType:      req.RepeatType,
		RepeatEndDate:   req.RepeatEndDate,
		ReminderMinutes: req.ReminderMinutes,
	}
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	req := eventRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	event, err := handler.calendar.CreateEvent(user, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// ListEventOccurrences expands the family's calendar into concrete
// occurrences over the requested window.
func (handler *Handler) ListEventOccurrences(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	from, err := time.Parse(dayLayout, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from date"})
	}
	to, err := time.Parse(dayLayout, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to date"})
	}

	occurrences, err := handler.calendar.ListOccurrences(user, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(occurrences)
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	eventID, err := c.ParamsInt("id")
	if err != nil || eventID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	req := eventRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	event, err := handler.calendar.UpdateEvent(user, uint(eventID), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	eventID, err := c.ParamsInt("id")
	if err != nil || eventID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	if err := handler.calendar.DeleteEvent(user, uint(eventID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
