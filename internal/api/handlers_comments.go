package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

func (handler *Handler) CreateComment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	req := commentRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dayLayout, req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
		}
		date = parsed
	}

	comment, err := handler.comments.CreateComment(user, date, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (handler *Handler) ListComments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	day, ok := queryDay(c, "date")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}

	comments, err := handler.comments.ListComments(user, day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

func (handler *Handler) DeleteComment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	commentID, err := c.ParamsInt("id")
	if err != nil || commentID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid comment id"})
	}

	if err := handler.comments.DeleteComment(user, uint(commentID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
