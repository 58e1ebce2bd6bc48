package services

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

// DueIncomplete returns the habits that are expected today and have no
// completed log yet. Pure: the caller loads the habits and the completed set,
// and a time-triggered collaborator decides what to do with the result.
func DueIncomplete(habits []models.Habit, completedHabitIDs map[uint]bool, today time.Time) []models.Habit {
	due := make([]models.Habit, 0, len(habits))
	for _, habit := range habits {
		if !EligibleOn(habit, today, today) {
			continue
		}
		if completedHabitIDs[habit.ID] {
			continue
		}
		due = append(due, habit)
	}
	return due
}

// OccurrenceRemindersAt returns the occurrences whose reminder moment
// (start minus lead minutes) falls on the same minute as the tick. Recurring
// templates are expanded around the tick first. The match is exact to the
// minute; invoking the filter twice for the same instant returns the same
// occurrences, and duplicate suppression is the caller's concern.
func OccurrenceRemindersAt(events []models.CalendarEvent, tick time.Time) []Occurrence {
	// The expansion window reaches as far ahead as the longest configured
	// lead, so a reminder set days before its occurrence still matches.
	windowStart := DateOnly(tick)
	windowEnd := windowStart.AddDate(0, 0, 2)
	for _, event := range events {
		if event.ReminderMinutes == nil {
			continue
		}
		lead := time.Duration(*event.ReminderMinutes) * time.Minute
		if horizon := DateOnly(tick.Add(lead)).AddDate(0, 0, 1); horizon.After(windowEnd) {
			windowEnd = horizon
		}
	}

	matched := make([]Occurrence, 0)
	for _, event := range events {
		if event.ReminderMinutes == nil {
			continue
		}
		lead := time.Duration(*event.ReminderMinutes) * time.Minute
		for _, occurrence := range ExpandOccurrences(event, windowStart, windowEnd) {
			if sameMinute(occurrence.StartAt.Add(-lead), tick) {
				matched = append(matched, occurrence)
			}
		}
	}
	return matched
}
