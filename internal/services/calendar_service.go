package services

import (
	"strings"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

type CalendarEventRepository interface {
	FindByID(eventID uint) (models.CalendarEvent, error)
	ListByFamilyIntersecting(familyID uint, from time.Time, to time.Time) ([]models.CalendarEvent, error)
	Create(event *models.CalendarEvent) error
	Save(event *models.CalendarEvent) error
	Delete(eventID uint) error
}

type CalendarService struct {
	events CalendarEventRepository
}

func NewCalendarService(events CalendarEventRepository) *CalendarService {
	return &CalendarService{events: events}
}

type EventInput struct {
	Title           string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	AllDay          bool
	Color           string
	RepeatType      string
	RepeatEndDate   *time.Time
	ReminderMinutes *int
}

// CreateEvent stores a new event template for the actor's family. Recurring
// templates represent only the first occurrence.
func (service *CalendarService) CreateEvent(actor models.User, input EventInput) (models.CalendarEvent, error) {
	if actor.FamilyID == nil {
		return models.CalendarEvent{}, ErrNoFamily
	}
	if err := validateEventInput(&input); err != nil {
		return models.CalendarEvent{}, err
	}

	event := models.CalendarEvent{
		FamilyID:        *actor.FamilyID,
		CreatedByID:     actor.ID,
		Title:           input.Title,
		Description:     input.Description,
		StartAt:         input.StartAt,
		EndAt:           input.EndAt,
		AllDay:          input.AllDay,
		Color:           input.Color,
		RepeatType:      input.RepeatType,
		RepeatEndDate:   input.RepeatEndDate,
		ReminderMinutes: input.ReminderMinutes,
	}
	if err := service.events.Create(&event); err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}

// ListOccurrences expands every family template intersecting [from, to] into
// concrete occurrences within that window.
func (service *CalendarService) ListOccurrences(actor models.User, from time.Time, to time.Time) ([]Occurrence, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}
	from = DateOnly(from)
	to = DateOnly(to)
	if to.Before(from) {
		return nil, ErrInvalidInput
	}

	templates, err := service.events.ListByFamilyIntersecting(*actor.FamilyID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	occurrences := make([]Occurrence, 0, len(templates))
	for _, template := range templates {
		occurrences = append(occurrences, ExpandOccurrences(template, from, to)...)
	}
	return occurrences, nil
}

// UpdateEvent modifies the template; any family member may edit, and the
// change affects all future expansions.
func (service *CalendarService) UpdateEvent(actor models.User, eventID uint, input EventInput) (models.CalendarEvent, error) {
	event, err := service.familyEvent(actor, eventID)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	if err := validateEventInput(&input); err != nil {
		return models.CalendarEvent{}, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartAt = input.StartAt
	event.EndAt = input.EndAt
	event.AllDay = input.AllDay
	event.Color = input.Color
	event.RepeatType = input.RepeatType
	event.RepeatEndDate = input.RepeatEndDate
	event.ReminderMinutes = input.ReminderMinutes
	if err := service.events.Save(&event); err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}

func (service *CalendarService) DeleteEvent(actor models.User, eventID uint) error {
	if _, err := service.familyEvent(actor, eventID); err != nil {
		return err
	}
	return service.events.Delete(eventID)
}

func (service *CalendarService) familyEvent(actor models.User, eventID uint) (models.CalendarEvent, error) {
	event, err := service.events.FindByID(eventID)
	if err != nil {
		return models.CalendarEvent{}, asNotFound(err)
	}
	if actor.FamilyID == nil || *actor.FamilyID != event.FamilyID {
		return models.CalendarEvent{}, ErrUnauthorized
	}
	return event, nil
}

func validateEventInput(input *EventInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.StartAt.IsZero() || input.EndAt.IsZero() {
		return ErrInvalidInput
	}
	if input.EndAt.Before(input.StartAt) {
		return ErrInvalidInput
	}
	if input.Color == "" {
		input.Color = models.DefaultEventColor
	}
	if input.RepeatType == "" {
		input.RepeatType = models.RepeatNone
	}
	if !models.ValidRepeatType(input.RepeatType) {
		return ErrInvalidInput
	}
	if input.ReminderMinutes != nil && *input.ReminderMinutes < 0 {
		return ErrInvalidInput
	}
	return nil
}
