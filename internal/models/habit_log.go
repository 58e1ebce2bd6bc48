package models

import "time"

type HabitLog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex:uidx_user_habit_date" json:"user_id"`
	HabitID     uint       `gorm:"not null;uniqueIndex:uidx_user_habit_date;index" json:"habit_id"`
	LogDate     time.Time  `gorm:"type:date;not null;uniqueIndex:uidx_user_habit_date" json:"log_date"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Note        string     `json:"note"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
