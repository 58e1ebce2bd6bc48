package services

import (
	"testing"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

func TestExpandNonRecurringEvent(t *testing.T) {
	event := makeEvent(models.RepeatNone, "2025-03-05 10:00", "2025-03-05 11:00")

	occurrences := ExpandOccurrences(event, mustParseDay("2025-03-01"), mustParseDay("2025-03-31"))
	if len(occurrences) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occurrences))
	}
	if !occurrences[0].StartAt.Equal(event.StartAt) {
		t.Fatalf("expected start %v, got %v", event.StartAt, occurrences[0].StartAt)
	}

	occurrences = ExpandOccurrences(event, mustParseDay("2025-04-01"), mustParseDay("2025-04-30"))
	if len(occurrences) != 0 {
		t.Fatalf("expected no occurrences outside the window, got %d", len(occurrences))
	}
}

func TestExpandWeeklyEvent(t *testing.T) {
	event := makeEvent(models.RepeatWeekly, "2025-03-05 10:00", "2025-03-05 11:00")

	occurrences := ExpandOccurrences(event, mustParseDay("2025-03-01"), mustParseDay("2025-03-31"))
	if len(occurrences) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(occurrences))
	}

	expected := []string{"2025-03-05", "2025-03-12", "2025-03-19", "2025-03-26"}
	for i, occurrence := range occurrences {
		if occurrence.StartAt.Format("2006-01-02") != expected[i] {
			t.Fatalf("expected occurrence %s, got %s", expected[i], occurrence.StartAt.Format("2006-01-02"))
		}
		if occurrence.StartAt.Format("15:04") != "10:00" {
			t.Fatalf("expected wall-clock 10:00, got %s", occurrence.StartAt.Format("15:04"))
		}
		if occurrence.EndAt.Sub(occurrence.StartAt) != time.Hour {
			t.Fatalf("expected one hour duration, got %v", occurrence.EndAt.Sub(occurrence.StartAt))
		}
	}
}

func TestExpandSkipsInstancesBeforeWindow(t *testing.T) {
	event := makeEvent(models.RepeatWeekly, "2025-03-05 10:00", "2025-03-05 11:00")

	occurrences := ExpandOccurrences(event, mustParseDay("2025-03-10"), mustParseDay("2025-03-31"))
	if len(occurrences) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(occurrences))
	}
	if occurrences[0].StartAt.Format("2006-01-02") != "2025-03-12" {
		t.Fatalf("expected first occurrence 2025-03-12, got %s", occurrences[0].StartAt.Format("2006-01-02"))
	}
}

func TestExpandHonorsRepeatEndDate(t *testing.T) {
	event := makeEvent(models.RepeatWeekly, "2025-03-05 10:00", "2025-03-05 11:00")
	repeatEnd := mustParseDay("2025-03-18")
	event.RepeatEndDate = &repeatEnd

	occurrences := ExpandOccurrences(event, mustParseDay("2025-03-01"), mustParseDay("2025-03-31"))
	if len(occurrences) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occurrences))
	}
}

func TestExpandMonthlyEvent(t *testing.T) {
	event := makeEvent(models.RepeatMonthly, "2025-01-15 09:00", "2025-01-15 09:30")

	occurrences := ExpandOccurrences(event, mustParseDay("2025-01-01"), mustParseDay("2025-03-31"))
	expected := []string{"2025-01-15", "2025-02-15", "2025-03-15"}
	if len(occurrences) != len(expected) {
		t.Fatalf("expected %d occurrences, got %d", len(expected), len(occurrences))
	}
	for i, occurrence := range occurrences {
		if occurrence.StartAt.Format("2006-01-02") != expected[i] {
			t.Fatalf("expected occurrence %s, got %s", expected[i], occurrence.StartAt.Format("2006-01-02"))
		}
	}
}

// Widening the window never changes the instances inside the narrow window.
func TestExpandWindowWideningIsStable(t *testing.T) {
	event := makeEvent(models.RepeatDaily, "2025-03-01 08:00", "2025-03-01 08:30")

	narrow := ExpandOccurrences(event, mustParseDay("2025-03-10"), mustParseDay("2025-03-12"))
	wide := ExpandOccurrences(event, mustParseDay("2025-03-01"), mustParseDay("2025-03-31"))

	wideStarts := make(map[string]bool, len(wide))
	for _, occurrence := range wide {
		wideStarts[occurrence.StartAt.Format("2006-01-02 15:04")] = true
	}
	for _, occurrence := range narrow {
		if !wideStarts[occurrence.StartAt.Format("2006-01-02 15:04")] {
			t.Fatalf("occurrence %v missing from the wider window", occurrence.StartAt)
		}
	}
}

func TestExpandUnknownRepeatRuleTerminates(t *testing.T) {
	event := makeEvent("FORTNIGHTLY", "2025-03-05 10:00", "2025-03-05 11:00")

	occurrences := ExpandOccurrences(event, mustParseDay("2025-03-01"), mustParseDay("2025-03-31"))
	if len(occurrences) != 1 {
		t.Fatalf("expected expansion to stop after the first instance, got %d", len(occurrences))
	}
}

func makeEvent(repeatType string, startAt string, endAt string) models.CalendarEvent {
	return models.CalendarEvent{
		ID:          1,
		FamilyID:    1,
		CreatedByID: 1,
		Title:       "Family dinner",
		StartAt:     mustParseMinute(startAt),
		EndAt:       mustParseMinute(endAt),
		Color:       models.DefaultEventColor,
		RepeatType:  repeatType,
	}
}
