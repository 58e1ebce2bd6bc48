package models

import "time"

const DefaultReminderTime = "21:00"

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	DisplayName     string    `gorm:"not null" json:"display_name"`
	EnableReminders bool      `gorm:"not null;default:true" json:"enable_reminders"`
	ReminderTime    string    `gorm:"not null;default:21:00" json:"reminder_time"`
	FamilyID        *uint     `gorm:"index" json:"family_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
