package main

import (
	"context"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tannerhall/hearth/internal/api"
	"github.com/tannerhall/hearth/internal/config"
	"github.com/tannerhall/hearth/internal/db"
	"github.com/tannerhall/hearth/internal/metrics"
	"github.com/tannerhall/hearth/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)
	handler := api.NewHandler(repos, cfg.SecretKey, time.Duration(cfg.TokenTTLMinutes)*time.Minute, time.Now)

	app := fiber.New(fiber.Config{
		AppName:               "Hearth",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())
	app.Use(metrics.Middleware())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	if cfg.SchedulerEnabled && cfg.ReminderWebhookURL != "" {
		reminders := services.NewReminderService(
			repos.Users,
			repos.Habits,
			repos.Logs,
			repos.Events,
			services.NewWebhookNotifier(cfg.ReminderWebhookURL),
			location,
			time.Now,
		)
		reminders.Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	address := net.JoinHostPort(cfg.Host, cfg.Port)
	log.Printf("Hearth listening on http://%s (db: %s, tz: %s)", address, cfg.DBPath, location.String())
	if err := app.Listen(address); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
