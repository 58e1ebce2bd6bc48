package services

import (
	"context"
	"testing"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

type fakeReminderUsers struct {
	enabled []models.User
	byFam   map[uint][]models.User
}

func (repo *fakeReminderUsers) ListWithRemindersEnabled() ([]models.User, error) {
	return repo.enabled, nil
}

func (repo *fakeReminderUsers) ListByFamily(familyID uint) ([]models.User, error) {
	return repo.byFam[familyID], nil
}

type fakeReminderHabits struct {
	byUser map[uint][]models.Habit
}

func (repo *fakeReminderHabits) ListByUser(userID uint) ([]models.Habit, error) {
	return repo.byUser[userID], nil
}

type fakeReminderLogs struct {
	byUser map[uint][]models.HabitLog
}

func (repo *fakeReminderLogs) ListByUserAndDate(userID uint, logDate time.Time) ([]models.HabitLog, error) {
	return repo.byUser[userID], nil
}

type fakeReminderEvents struct {
	events []models.CalendarEvent
}

func (repo *fakeReminderEvents) ListWithReminders() ([]models.CalendarEvent, error) {
	return repo.events, nil
}

type recordingNotifier struct {
	sent []string
}

func (notifier *recordingNotifier) Notify(ctx context.Context, user models.User, title string, body string) error {
	notifier.sent = append(notifier.sent, user.Username+": "+title)
	return nil
}

func TestHabitReminderFiresAtPreferredTime(t *testing.T) {
	user := models.User{ID: 1, Username: "anna", EnableReminders: true, ReminderTime: "21:00"}
	habit := makeHabit(models.CadenceDaily, nil, 0, "2025-01-01")

	notifier := &recordingNotifier{}
	service := NewReminderService(
		&fakeReminderUsers{enabled: []models.User{user}},
		&fakeReminderHabits{byUser: map[uint][]models.Habit{1: {habit}}},
		&fakeReminderLogs{byUser: map[uint][]models.HabitLog{}},
		&fakeReminderEvents{},
		notifier,
		time.UTC,
		func() time.Time { return mustParseMinute("2025-03-04 21:00") },
	)

	service.RunTick(context.Background())
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(notifier.sent))
	}

	// Re-running the same minute is suppressed.
	service.RunTick(context.Background())
	if len(notifier.sent) != 1 {
		t.Fatalf("expected duplicate suppression, got %d reminders", len(notifier.sent))
	}
}

func TestHabitReminderSkipsOffMinuteAndCompleted(t *testing.T) {
	user := models.User{ID: 1, Username: "anna", EnableReminders: true, ReminderTime: "21:00"}
	habit := makeHabit(models.CadenceDaily, nil, 0, "2025-01-01")

	notifier := &recordingNotifier{}
	service := NewReminderService(
		&fakeReminderUsers{enabled: []models.User{user}},
		&fakeReminderHabits{byUser: map[uint][]models.Habit{1: {habit}}},
		&fakeReminderLogs{byUser: map[uint][]models.HabitLog{}},
		&fakeReminderEvents{},
		notifier,
		time.UTC,
		func() time.Time { return mustParseMinute("2025-03-04 20:59") },
	)

	service.RunTick(context.Background())
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no reminder off the preferred minute, got %d", len(notifier.sent))
	}

	// Everything completed: nothing to remind even at the right minute.
	completed := NewReminderService(
		&fakeReminderUsers{enabled: []models.User{user}},
		&fakeReminderHabits{byUser: map[uint][]models.Habit{1: {habit}}},
		&fakeReminderLogs{byUser: map[uint][]models.HabitLog{
			1: {{HabitID: habit.ID, UserID: 1, LogDate: mustParseDay("2025-03-04"), Completed: true}},
		}},
		&fakeReminderEvents{},
		notifier,
		time.UTC,
		func() time.Time { return mustParseMinute("2025-03-04 21:00") },
	)
	completed.RunTick(context.Background())
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no reminder with all habits done, got %d", len(notifier.sent))
	}
}

func TestCalendarReminderRespectsMemberOptOut(t *testing.T) {
	lead := 30
	event := makeEvent(models.RepeatNone, "2025-03-04 21:30", "2025-03-04 22:30")
	event.ReminderMinutes = &lead

	optedIn := models.User{ID: 1, Username: "anna", EnableReminders: true}
	optedOut := models.User{ID: 2, Username: "ben", EnableReminders: false}

	notifier := &recordingNotifier{}
	service := NewReminderService(
		&fakeReminderUsers{byFam: map[uint][]models.User{1: {optedIn, optedOut}}},
		&fakeReminderHabits{},
		&fakeReminderLogs{},
		&fakeReminderEvents{events: []models.CalendarEvent{event}},
		notifier,
		time.UTC,
		func() time.Time { return mustParseMinute("2025-03-04 21:00") },
	)

	service.RunTick(context.Background())
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(notifier.sent))
	}
	if notifier.sent[0] != "anna: Calendar reminder" {
		t.Fatalf("unexpected recipient: %s", notifier.sent[0])
	}
}
