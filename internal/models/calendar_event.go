package models

import "time"

// Recurrence rules for calendar event templates. A stored event is only the
// first occurrence; concrete occurrences are derived, never persisted.
const (
	RepeatNone    = "NONE"
	RepeatDaily   = "DAILY"
	RepeatWeekly  = "WEEKLY"
	RepeatMonthly = "MONTHLY"
	RepeatYearly  = "YEARLY"
)

const DefaultEventColor = "#3843FF"

type CalendarEvent struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	FamilyID        uint       `gorm:"not null;index" json:"family_id"`
	CreatedByID     uint       `gorm:"not null" json:"created_by_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `json:"description"`
	StartAt         time.Time  `gorm:"not null" json:"start_at"`
	EndAt           time.Time  `gorm:"not null" json:"end_at"`
	AllDay          bool       `gorm:"not null;default:false" json:"all_day"`
	Color           string     `gorm:"not null;default:#3843FF" json:"color"`
	RepeatType      string     `gorm:"not null;default:NONE" json:"repeat_type"`
	RepeatEndDate   *time.Time `gorm:"type:date" json:"repeat_end_date"`
	ReminderMinutes *int       `json:"reminder_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ValidRepeatType(repeatType string) bool {
	switch repeatType {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return true
	default:
		return false
	}
}
