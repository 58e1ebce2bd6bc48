package models

import "time"

// Cadence values describe which calendar dates a habit is expected on.
const (
	CadenceDaily       = "DAILY"
	CadenceWeekly      = "WEEKLY"
	CadenceWeeklyCount = "WEEKLY_COUNT"
)

type Habit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	FamilyID     uint      `gorm:"not null;index" json:"family_id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	Color        string    `gorm:"not null" json:"color"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Cadence      string    `gorm:"not null;default:DAILY" json:"cadence"`
	Weekdays     []int     `gorm:"serializer:json" json:"weekdays"`
	WeeklyTarget int       `json:"weekly_target"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizedCadence maps unknown or empty cadence values to daily so that
// legacy rows never crash aggregate views.
func (habit Habit) NormalizedCadence() string {
	switch habit.Cadence {
	case CadenceWeekly, CadenceWeeklyCount:
		return habit.Cadence
	default:
		return CadenceDaily
	}
}

// CreatedDate truncates the creation timestamp to its calendar date.
func (habit Habit) CreatedDate() time.Time {
	year, month, day := habit.CreatedAt.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, habit.CreatedAt.Location())
}

func ValidCadence(cadence string) bool {
	switch cadence {
	case CadenceDaily, CadenceWeekly, CadenceWeeklyCount:
		return true
	default:
		return false
	}
}

func ValidWeekdays(weekdays []int) bool {
	if len(weekdays) == 0 {
		return false
	}
	for _, weekday := range weekdays {
		if weekday < 1 || weekday > 7 {
			return false
		}
	}
	return true
}
