package api

import (
	"time"

	"github.com/tannerhall/hearth/internal/db"
	"github.com/tannerhall/hearth/internal/services"
)

type Handler struct {
	auth     *services.AuthService
	families *services.FamilyService
	habits   *services.HabitService
	logs     *services.HabitLogService
	calendar *services.CalendarService
	comments *services.CommentService
	stats    *services.StatsService
	records  *services.HealthRecordService

	secretKey []byte
	tokenTTL  time.Duration
}

func NewHandler(repos *db.Repositories, secretKey string, tokenTTL time.Duration, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &Handler{
		auth:      services.NewAuthService(repos.Users),
		families:  services.NewFamilyService(repos.Families, repos.Users),
		habits:    services.NewHabitService(repos.Habits, repos.Logs, now),
		logs:      services.NewHabitLogService(repos.Logs, repos.Habits, now),
		calendar:  services.NewCalendarService(repos.Events),
		comments:  services.NewCommentService(repos.Comments),
		stats:     services.NewStatsService(repos.Logs, repos.Habits, repos.Users, now),
		records:   services.NewHealthRecordService(repos.Records, now),
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}
