package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/tannerhall/hearth/internal/metrics"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Put("/reminders", handler.AuthRequired, handler.UpdateReminderSettings)

	family := api.Group("/family", handler.AuthRequired)
	family.Post("", handler.CreateFamily)
	family.Get("", handler.GetFamily)
	family.Post("/join", handler.JoinFamily)
	family.Put("/name", handler.RenameFamily)
	family.Post("/leave", handler.LeaveFamily)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/reorder", handler.ReorderHabitsBatch)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/reorder", handler.ReorderHabit)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Post("", handler.LogHabit)
	logs.Get("/me", handler.MyLogs)
	logs.Get("/family", handler.FamilyLogs)
	logs.Get("/family/range", handler.FamilyLogsRange)

	events := api.Group("/calendar/events", handler.AuthRequired)
	events.Get("", handler.ListEventOccurrences)
	events.Post("", handler.CreateEvent)
	events.Put("/:id", handler.UpdateEvent)
	events.Delete("/:id", handler.DeleteEvent)

	comments := api.Group("/comments", handler.AuthRequired)
	comments.Get("", handler.ListComments)
	comments.Post("", handler.CreateComment)
	comments.Delete("/:id", handler.DeleteComment)

	health := api.Group("/health", handler.AuthRequired)
	health.Post("", handler.CreateHealthRecord)
	health.Get("/my", handler.MyHealthRecords)
	health.Get("/family", handler.FamilyHealthRecords)
	health.Get("/recent", handler.RecentHealthRecords)
	health.Get("/chart", handler.HealthRecordChart)
	health.Put("/:id", handler.UpdateHealthRecord)
	health.Delete("/:id", handler.DeleteHealthRecord)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/monthly", handler.MonthlyStats)
}
