package services

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

const (
	weeklyStreakLookbackDays = 365
	weeklyCountStreakMax     = 52
)

// Streak computes the current consecutive-completion streak for a habit.
// completedDates holds the dates the habit was marked completed, in any
// order. Daily and weekly streaks count days, count-based streaks count
// Monday-anchored weeks.
func Streak(habit models.Habit, completedDates []time.Time, today time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	today = DateOnly(today)
	switch habit.NormalizedCadence() {
	case models.CadenceWeeklyCount:
		return weeklyCountStreak(habit.WeeklyTarget, completedDates, today)
	case models.CadenceWeekly:
		return weeklyStreak(habit.Weekdays, completedDates, today)
	default:
		return dailyStreak(completedDates, today)
	}
}

func dailyStreak(completedDates []time.Time, today time.Time) int {
	completed := completedDateSet(completedDates)

	check := today
	// Today not yet logged is not a streak breaker.
	if !completed[dateKey(check)] {
		check = check.AddDate(0, 0, -1)
	}

	streak := 0
	for completed[dateKey(check)] {
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

func weeklyStreak(weekdays []int, completedDates []time.Time, today time.Time) int {
	if len(weekdays) == 0 {
		return 0
	}

	completed := completedDateSet(completedDates)

	// Most recent scheduled day on or before today. An empty or malformed
	// selection never matches within a week and yields a zero streak.
	check := today
	for !containsWeekday(weekdays, ISOWeekday(check)) {
		check = check.AddDate(0, 0, -1)
		if check.Before(today.AddDate(0, 0, -7)) {
			return 0
		}
	}

	// The head being incomplete does not break the streak; move to the
	// previous scheduled day before counting.
	if !completed[dateKey(check)] {
		previous, found := previousScheduledDay(check.AddDate(0, 0, -1), weekdays)
		if !found {
			return 0
		}
		check = previous
	}

	lookbackLimit := today.AddDate(0, 0, -weeklyStreakLookbackDays)
	streak := 0
	for completed[dateKey(check)] {
		streak++
		previous, found := previousScheduledDay(check.AddDate(0, 0, -1), weekdays)
		if !found || previous.Before(lookbackLimit) {
			break
		}
		check = previous
	}
	return streak
}

func previousScheduledDay(from time.Time, weekdays []int) (time.Time, bool) {
	check := from
	for i := 0; i < 7; i++ {
		if containsWeekday(weekdays, ISOWeekday(check)) {
			return check, true
		}
		check = check.AddDate(0, 0, -1)
	}
	return time.Time{}, false
}

func weeklyCountStreak(weeklyTarget int, completedDates []time.Time, today time.Time) int {
	if weeklyTarget < 1 {
		return 0
	}

	dates := make([]time.Time, 0, len(completedDates))
	for _, date := range completedDates {
		dates = append(dates, DateOnly(date))
	}

	currentWeekStart := today.AddDate(0, 0, -(ISOWeekday(today) - 1))

	streak := 0
	// The current week is allowed to be partial: only days through today
	// count toward its total.
	if countInRange(dates, currentWeekStart, today) >= weeklyTarget {
		streak++
	}

	weekStart := currentWeekStart.AddDate(0, 0, -7)
	weekEnd := currentWeekStart.AddDate(0, 0, -1)
	for i := 0; i < weeklyCountStreakMax; i++ {
		if countInRange(dates, weekStart, weekEnd) < weeklyTarget {
			break
		}
		streak++
		weekStart = weekStart.AddDate(0, 0, -7)
		weekEnd = weekEnd.AddDate(0, 0, -7)
	}
	return streak
}

func countInRange(dates []time.Time, from time.Time, to time.Time) int {
	count := 0
	for _, date := range dates {
		if betweenInclusive(date, from, to) {
			count++
		}
	}
	return count
}

func completedDateSet(dates []time.Time) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, date := range dates {
		set[dateKey(DateOnly(date))] = true
	}
	return set
}
