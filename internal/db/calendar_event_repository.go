package db

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type CalendarEventRepository struct {
	database *gorm.DB
}

func NewCalendarEventRepository(database *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{database: database}
}

func (repo *CalendarEventRepository) FindByID(eventID uint) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := repo.database.First(&event, eventID).Error; err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}

// ListByFamilyIntersecting returns the templates that can produce occurrences
// within [from, to]: non-recurring events starting in the window plus every
// recurring template that started on or before the window's end.
func (repo *CalendarEventRepository) ListByFamilyIntersecting(familyID uint, from time.Time, to time.Time) ([]models.CalendarEvent, error) {
	events := make([]models.CalendarEvent, 0)
	if err := repo.database.
		Where("family_id = ?", familyID).
		Where(
			repo.database.
				Where("repeat_type = ? AND start_at >= ? AND start_at <= ?", models.RepeatNone, from, to).
				Or("repeat_type <> ? AND start_at <= ? AND (repeat_end_date IS NULL OR repeat_end_date >= ?)", models.RepeatNone, to, from),
		).
		Order("start_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *CalendarEventRepository) ListWithReminders() ([]models.CalendarEvent, error) {
	events := make([]models.CalendarEvent, 0)
	if err := repo.database.
		Where("reminder_minutes IS NOT NULL").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *CalendarEventRepository) Create(event *models.CalendarEvent) error {
	return repo.database.Create(event).Error
}

func (repo *CalendarEventRepository) Save(event *models.CalendarEvent) error {
	return repo.database.Save(event).Error
}

func (repo *CalendarEventRepository) Delete(eventID uint) error {
	return repo.database.Delete(&models.CalendarEvent{}, eventID).Error
}
