package services

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

// IsDueOn reports whether a daily or weekly habit is due on the given date.
// Dates before the habit's creation and dates after today are never due.
// Count-based habits have no per-day schedule; IsDueOn returns false for them
// and callers branch on cadence before asking day-level questions.
func IsDueOn(habit models.Habit, date time.Time, today time.Time) bool {
	date = DateOnly(date)
	if date.After(DateOnly(today)) {
		return false
	}
	if date.Before(habit.CreatedDate()) {
		return false
	}

	switch habit.NormalizedCadence() {
	case models.CadenceWeekly:
		return containsWeekday(habit.Weekdays, ISOWeekday(date))
	case models.CadenceWeeklyCount:
		return false
	default:
		return true
	}
}

// EligibleOn is the day-level eligibility used by the monthly aggregator and
// the reminder filter. It matches IsDueOn except that count-based habits fall
// back to the daily rule, one eligible unit per elapsed calendar day. That
// overstates daily eligible-habit counts for count-based cadences; kept for
// parity with the stored statistics users already see.
func EligibleOn(habit models.Habit, date time.Time, today time.Time) bool {
	if habit.NormalizedCadence() != models.CadenceWeeklyCount {
		return IsDueOn(habit, date, today)
	}

	date = DateOnly(date)
	return !date.After(DateOnly(today)) && !date.Before(habit.CreatedDate())
}

func containsWeekday(weekdays []int, weekday int) bool {
	for _, candidate := range weekdays {
		if candidate == weekday {
			return true
		}
	}
	return false
}
