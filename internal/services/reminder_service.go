package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/tannerhall/hearth/internal/metrics"
	"github.com/tannerhall/hearth/internal/models"
)

// Notifier delivers a reminder to a single user. Push, email or any other
// transport lives behind this seam; the reminder service only decides who
// gets reminded about what.
type Notifier interface {
	Notify(ctx context.Context, user models.User, title string, body string) error
}

type ReminderUserRepository interface {
	ListWithRemindersEnabled() ([]models.User, error)
	ListByFamily(familyID uint) ([]models.User, error)
}

type ReminderHabitReader interface {
	ListByUser(userID uint) ([]models.Habit, error)
}

type ReminderLogReader interface {
	ListByUserAndDate(userID uint, logDate time.Time) ([]models.HabitLog, error)
}

type ReminderEventReader interface {
	ListWithReminders() ([]models.CalendarEvent, error)
}

// ReminderService polls once per minute and fires habit and calendar
// reminders through the Notifier. Matching is minute-exact against the
// injected clock; a small sent-key map suppresses duplicates when a tick is
// evaluated more than once within the same minute.
type ReminderService struct {
	users    ReminderUserRepository
	habits   ReminderHabitReader
	logs     ReminderLogReader
	events   ReminderEventReader
	notifier Notifier
	location *time.Location
	now      func() time.Time

	mu       sync.Mutex
	sentKeys map[string]time.Time
}

func NewReminderService(
	users ReminderUserRepository,
	habits ReminderHabitReader,
	logs ReminderLogReader,
	events ReminderEventReader,
	notifier Notifier,
	location *time.Location,
	now func() time.Time,
) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ReminderService{
		users:    users,
		habits:   habits,
		logs:     logs,
		events:   events,
		notifier: notifier,
		location: location,
		now:      now,
		sentKeys: make(map[string]time.Time),
	}
}

func (service *ReminderService) Start(ctx context.Context) {
	if service.notifier == nil {
		return
	}

	ticker := time.NewTicker(time.Minute)
	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.RunTick(ctx)
			}
		}
	}()
}

// RunTick evaluates one scheduler tick. Exported so a cron-style caller can
// drive it without the internal ticker.
func (service *ReminderService) RunTick(ctx context.Context) {
	tick := service.now().In(service.location)
	service.runHabitReminders(ctx, tick)
	service.runCalendarReminders(ctx, tick)
}

func (service *ReminderService) runHabitReminders(ctx context.Context, tick time.Time) {
	users, err := service.users.ListWithRemindersEnabled()
	if err != nil {
		log.Printf("reminders: fetch users failed: %v", err)
		return
	}

	today := DateOnly(tick)
	wallClock := tick.Format("15:04")

	for _, user := range users {
		if user.ReminderTime != wallClock {
			continue
		}

		habits, err := service.habits.ListByUser(user.ID)
		if err != nil {
			log.Printf("reminders: fetch habits failed for user %d: %v", user.ID, err)
			continue
		}
		todayLogs, err := service.logs.ListByUserAndDate(user.ID, today)
		if err != nil {
			log.Printf("reminders: fetch logs failed for user %d: %v", user.ID, err)
			continue
		}

		completedIDs := make(map[uint]bool, len(todayLogs))
		for _, logEntry := range todayLogs {
			if logEntry.Completed {
				completedIDs[logEntry.HabitID] = true
			}
		}

		incomplete := DueIncomplete(habits, completedIDs, today)
		if len(incomplete) == 0 {
			continue
		}

		key := fmt.Sprintf("habits:%d:%s", user.ID, tick.Format("2006-01-02T15:04"))
		if !service.shouldSend(key, tick) {
			continue
		}

		if err := service.notifier.Notify(ctx, user, "Habit reminder", habitReminderBody(incomplete)); err != nil {
			log.Printf("reminders: send habit reminder failed for user %d: %v", user.ID, err)
			continue
		}
		metrics.RemindersSent.WithLabelValues("habit").Inc()
	}
}

func (service *ReminderService) runCalendarReminders(ctx context.Context, tick time.Time) {
	events, err := service.events.ListWithReminders()
	if err != nil {
		log.Printf("reminders: fetch events failed: %v", err)
		return
	}

	for _, occurrence := range OccurrenceRemindersAt(events, tick) {
		members, err := service.users.ListByFamily(occurrence.FamilyID)
		if err != nil {
			log.Printf("reminders: fetch family %d failed: %v", occurrence.FamilyID, err)
			continue
		}

		for _, member := range members {
			if !member.EnableReminders {
				continue
			}

			key := fmt.Sprintf("event:%d:%d:%s", occurrence.EventID, member.ID, occurrence.StartAt.Format("2006-01-02T15:04"))
			if !service.shouldSend(key, tick) {
				continue
			}

			if err := service.notifier.Notify(ctx, member, "Calendar reminder", occurrenceReminderBody(occurrence)); err != nil {
				log.Printf("reminders: send event reminder failed for user %d: %v", member.ID, err)
				continue
			}
			metrics.RemindersSent.WithLabelValues("calendar").Inc()
		}
	}
}

func (service *ReminderService) shouldSend(key string, tick time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentAt, sent := service.sentKeys[key]; sent && sameDay(sentAt, tick) {
		return false
	}

	service.sentKeys[key] = tick
	if len(service.sentKeys) > 1000 {
		service.sentKeys = make(map[string]time.Time)
	}
	return true
}

func habitReminderBody(incomplete []models.Habit) string {
	names := make([]string, 0, 3)
	for index, habit := range incomplete {
		if index == 3 {
			break
		}
		names = append(names, habit.Name)
	}

	if len(incomplete) > 3 {
		return fmt.Sprintf("%s and %d more are still waiting today.", strings.Join(names, ", "), len(incomplete)-3)
	}
	return fmt.Sprintf("%s still waiting today.", strings.Join(names, ", "))
}

func occurrenceReminderBody(occurrence Occurrence) string {
	if occurrence.ReminderMinutes == nil || *occurrence.ReminderMinutes == 0 {
		return fmt.Sprintf("'%s' starts now.", occurrence.Title)
	}

	lead := *occurrence.ReminderMinutes
	when := fmt.Sprintf("in %d minute(s)", lead)
	if lead >= 60 {
		hours := lead / 60
		minutes := lead % 60
		if minutes == 0 {
			when = fmt.Sprintf("in %d hour(s)", hours)
		} else {
			when = fmt.Sprintf("in %dh %dm", hours, minutes)
		}
	}

	if occurrence.AllDay {
		return fmt.Sprintf("'%s' starts %s.", occurrence.Title, when)
	}
	return fmt.Sprintf("'%s' starts %s (%s).", occurrence.Title, when, occurrence.StartAt.Format("15:04"))
}
