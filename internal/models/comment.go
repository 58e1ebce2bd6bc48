package models

import "time"

// Comment is a family-scoped note pinned to a calendar date.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  uint      `gorm:"not null;index" json:"family_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
