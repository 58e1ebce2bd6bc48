package services

import (
	"sort"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

type MonthStats struct {
	Year   int                 `json:"year"`
	Month  int                 `json:"month"`
	Users  []UserMonthStats    `json:"user_stats"`
	Habits []HabitMonthStats   `json:"habit_stats"`
	Days   map[string]DayStats `json:"daily_stats"`
}

type UserMonthStats struct {
	UserID         uint    `json:"user_id"`
	Username       string  `json:"username"`
	DisplayName    string  `json:"display_name"`
	HabitCount     int     `json:"habit_count"`
	CompletedCount int     `json:"completed_count"`
	EligibleDays   int     `json:"eligible_days"`
	CompletionRate float64 `json:"completion_rate"`
}

type HabitMonthStats struct {
	HabitID        uint    `json:"habit_id"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	UserID         uint    `json:"user_id"`
	OwnerName      string  `json:"owner_name"`
	CompletedCount int     `json:"completed_count"`
	EligibleDays   int     `json:"eligible_days"`
	CompletionRate float64 `json:"completion_rate"`
}

type DayStats struct {
	Date           time.Time        `json:"date"`
	EligibleCount  int              `json:"eligible_count"`
	CompletedCount int              `json:"completed_count"`
	Habits         []DayHabitStatus `json:"habits"`
}

type DayHabitStatus struct {
	HabitID     uint       `json:"habit_id"`
	Name        string     `json:"name"`
	UserID      uint       `json:"user_id"`
	OwnerName   string     `json:"owner_name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// AggregateMonth derives the per-user, per-habit and per-day completion
// statistics for one family month. Nothing here is cached or persisted; the
// caller supplies the month's logs, the family's habits and members, and the
// injected current date. Days after today never contribute to denominators,
// so completion rates are always measured against days that have occurred.
func AggregateMonth(year int, month time.Month, logs []models.HabitLog, habits []models.Habit, members []models.User, today time.Time) MonthStats {
	today = DateOnly(today)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	habitsByID := make(map[uint]models.Habit, len(habits))
	for _, habit := range habits {
		habitsByID[habit.ID] = habit
	}
	displayNames := make(map[uint]string, len(members))
	for _, member := range members {
		displayNames[member.ID] = member.DisplayName
	}

	stats := MonthStats{
		Year:   year,
		Month:  int(month),
		Users:  make([]UserMonthStats, 0, len(members)),
		Habits: make([]HabitMonthStats, 0, len(habits)),
		Days:   make(map[string]DayStats, daysInMonth),
	}

	for _, member := range members {
		userStats := UserMonthStats{
			UserID:      member.ID,
			Username:    member.Username,
			DisplayName: member.DisplayName,
		}
		for _, habit := range habits {
			if habit.UserID != member.ID {
				continue
			}
			userStats.HabitCount++
			userStats.EligibleDays += eligibleDaysInMonth(habit, year, month, today)
		}
		for _, logEntry := range logs {
			if logEntry.UserID != member.ID || !logEntry.Completed {
				continue
			}
			habit, known := habitsByID[logEntry.HabitID]
			if !known || !EligibleOn(habit, logEntry.LogDate, today) {
				continue
			}
			userStats.CompletedCount++
		}
		userStats.CompletionRate = completionRate(userStats.CompletedCount, userStats.EligibleDays)
		stats.Users = append(stats.Users, userStats)
	}

	for _, habit := range habits {
		habitStats := HabitMonthStats{
			HabitID:      habit.ID,
			Name:         habit.Name,
			Color:        habit.Color,
			UserID:       habit.UserID,
			OwnerName:    displayNames[habit.UserID],
			EligibleDays: eligibleDaysInMonth(habit, year, month, today),
		}
		for _, logEntry := range logs {
			if logEntry.HabitID != habit.ID || !logEntry.Completed {
				continue
			}
			if !EligibleOn(habit, logEntry.LogDate, today) {
				continue
			}
			habitStats.CompletedCount++
		}
		habitStats.CompletionRate = completionRate(habitStats.CompletedCount, habitStats.EligibleDays)
		stats.Habits = append(stats.Habits, habitStats)
	}

	sort.Slice(stats.Users, func(i, j int) bool { return stats.Users[i].UserID < stats.Users[j].UserID })
	sort.Slice(stats.Habits, func(i, j int) bool { return stats.Habits[i].HabitID < stats.Habits[j].HabitID })

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		dayStats := DayStats{
			Date:   date,
			Habits: make([]DayHabitStatus, 0),
		}

		// Every habit eligible that day appears in the summary, with a
		// missing log reported as not completed rather than absent.
		for _, habit := range habits {
			if !EligibleOn(habit, date, today) {
				continue
			}
			status := DayHabitStatus{
				HabitID:   habit.ID,
				Name:      habit.Name,
				UserID:    habit.UserID,
				OwnerName: displayNames[habit.UserID],
			}
			for _, logEntry := range logs {
				if logEntry.HabitID != habit.ID || !sameDay(logEntry.LogDate, date) {
					continue
				}
				status.Completed = logEntry.Completed
				status.CompletedAt = logEntry.CompletedAt
				break
			}
			if status.Completed {
				dayStats.CompletedCount++
			}
			dayStats.EligibleCount++
			dayStats.Habits = append(dayStats.Habits, status)
		}

		stats.Days[dateKey(date)] = dayStats
	}

	return stats
}

// eligibleDaysInMonth counts the days a habit was expected in the month,
// clamped between the habit's creation date and today. Count-based habits
// use the daily day count; see EligibleOn.
func eligibleDaysInMonth(habit models.Habit, year int, month time.Month, today time.Time) int {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	effectiveStart := monthStart
	if created := habit.CreatedDate(); created.After(effectiveStart) {
		effectiveStart = created
	}
	effectiveEnd := monthEnd
	if today.Before(effectiveEnd) {
		effectiveEnd = today
	}
	if effectiveStart.After(effectiveEnd) {
		return 0
	}

	// Count calendar days by stepping dates rather than dividing a duration:
	// in a DST month two local midnights are not a whole number of 24h apart.
	weeklyOnly := habit.NormalizedCadence() == models.CadenceWeekly
	count := 0
	for date := effectiveStart; !date.After(effectiveEnd); date = date.AddDate(0, 0, 1) {
		if weeklyOnly && !containsWeekday(habit.Weekdays, ISOWeekday(date)) {
			continue
		}
		count++
	}
	return count
}

func completionRate(completed int, eligible int) float64 {
	if eligible <= 0 {
		return 0
	}
	return float64(completed) * 100.0 / float64(eligible)
}
