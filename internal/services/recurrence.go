package services

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

// Occurrence is one concrete date-bound instance derived from a calendar
// event template. Occurrences carry the template's identity and metadata;
// editing or deleting always acts on the template.
type Occurrence struct {
	EventID         uint       `json:"event_id"`
	FamilyID        uint       `json:"family_id"`
	CreatedByID     uint       `json:"created_by_id"`
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

// ExpandOccurrences expands an event template into the instances whose start
// date falls within [rangeStart, rangeEnd]. Recurring templates step forward
// from their own start date, so instances before rangeStart are computed to
// advance the cursor but never emitted. An unrecognized repeat rule stops
// expansion instead of looping.
func ExpandOccurrences(event models.CalendarEvent, rangeStart time.Time, rangeEnd time.Time) []Occurrence {
	rangeStart = DateOnly(rangeStart)
	rangeEnd = DateOnly(rangeEnd)
	occurrences := make([]Occurrence, 0, 1)

	if event.RepeatType == models.RepeatNone || event.RepeatType == "" {
		eventDate := DateOnly(event.StartAt)
		if betweenInclusive(eventDate, rangeStart, rangeEnd) {
			occurrences = append(occurrences, occurrenceAt(event, event.StartAt))
		}
		return occurrences
	}

	effectiveEnd := rangeEnd
	if event.RepeatEndDate != nil && DateOnly(*event.RepeatEndDate).Before(effectiveEnd) {
		effectiveEnd = DateOnly(*event.RepeatEndDate)
	}

	duration := event.EndAt.Sub(event.StartAt)
	cursor := DateOnly(event.StartAt)
	for !cursor.After(effectiveEnd) {
		if !cursor.Before(rangeStart) {
			start := anchorTimeOfDay(event.StartAt, cursor)
			occurrence := occurrenceAt(event, start)
			occurrence.EndAt = start.Add(duration)
			occurrences = append(occurrences, occurrence)
		}

		switch event.RepeatType {
		case models.RepeatDaily:
			cursor = cursor.AddDate(0, 0, 1)
		case models.RepeatWeekly:
			cursor = cursor.AddDate(0, 0, 7)
		case models.RepeatMonthly:
			cursor = cursor.AddDate(0, 1, 0)
		case models.RepeatYearly:
			cursor = cursor.AddDate(1, 0, 0)
		default:
			// Unknown rule: terminate rather than loop forever.
			return occurrences
		}
	}

	return occurrences
}

// anchorTimeOfDay reanchors the template's wall-clock time onto a new date.
func anchorTimeOfDay(template time.Time, date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		template.Hour(), template.Minute(), template.Second(), template.Nanosecond(),
		template.Location(),
	)
}

func occurrenceAt(event models.CalendarEvent, start time.Time) Occurrence {
	return Occurrence{
		EventID:         event.ID,
		FamilyID:        event.FamilyID,
		CreatedByID:     event.CreatedByID,
		Title:           event.Title,
		Description:     event.Description,
		StartAt:         start,
		EndAt:           event.EndAt,
		AllDay:          event.AllDay,
		Color:           event.Color,
		RepeatType:      event.RepeatType,
		RepeatEndDate:   event.RepeatEndDate,
		ReminderMinutes: event.ReminderMinutes,
	}
}
