package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tannerhall/hearth/internal/metrics"
)

const dayLayout = "2006-01-02"

// queryDay parses the named query parameter as a calendar day, defaulting to
// today when absent.
func queryDay(c *fiber.Ctx, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now(), true
	}
	day, err := time.Parse(dayLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

type logRequest struct {
	HabitID   uint   `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
}

func (handler *Handler) LogHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	req := logRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	logDate := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dayLayout, req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
		}
		logDate = parsed
	}

	entry, err := handler.logs.LogHabit(user, req.HabitID, logDate, req.Completed, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	metrics.HabitLogUpserts.Inc()
	return c.JSON(entry)
}

func (handler *Handler) MyLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	day, ok := queryDay(c, "date")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}

	entries, err := handler.logs.MyLogsForDate(user, day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) FamilyLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	day, ok := queryDay(c, "date")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}

	entries, err := handler.logs.FamilyLogsForDate(user, day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) FamilyLogsRange(c *fiber.Ctx) error {
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

	entries, err := handler.logs.FamilyLogsForRange(user, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
