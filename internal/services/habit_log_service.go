package services

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

type HabitLogRepository interface {
	FindByUserHabitDate(userID uint, habitID uint, logDate time.Time) (models.HabitLog, bool, error)
	ListByUserAndDate(userID uint, logDate time.Time) ([]models.HabitLog, error)
	ListByFamilyAndDate(familyID uint, logDate time.Time) ([]models.HabitLog, error)
	ListByFamilyAndRange(familyID uint, from time.Time, to time.Time) ([]models.HabitLog, error)
	Create(entry *models.HabitLog) error
	Save(entry *models.HabitLog) error
}

type LogHabitReader interface {
	FindByID(habitID uint) (models.Habit, error)
}

type HabitLogService struct {
	logs   HabitLogRepository
	habits LogHabitReader
	now    func() time.Time
}

func NewHabitLogService(logs HabitLogRepository, habits LogHabitReader, now func() time.Time) *HabitLogService {
	return &HabitLogService{logs: logs, habits: habits, now: now}
}

// LogHabit records a completion state for (actor, habit, date) with upsert
// semantics: logging the same habit and date twice updates the existing row.
// The completion timestamp is set when completed flips true and cleared when
// it flips false.
func (service *HabitLogService) LogHabit(actor models.User, habitID uint, logDate time.Time, completed bool, note string) (models.HabitLog, error) {
	habit, err := service.habits.FindByID(habitID)
	if err != nil {
		return models.HabitLog{}, asNotFound(err)
	}
	if habit.UserID != actor.ID {
		return models.HabitLog{}, ErrUnauthorized
	}

	logDate = DateOnly(logDate)
	entry, exists, err := service.logs.FindByUserHabitDate(actor.ID, habitID, logDate)
	if err != nil {
		return models.HabitLog{}, err
	}

	var completedAt *time.Time
	if completed {
		timestamp := service.now()
		completedAt = &timestamp
	}

	if exists {
		entry.Completed = completed
		entry.Note = note
		entry.CompletedAt = completedAt
		if err := service.logs.Save(&entry); err != nil {
			return models.HabitLog{}, err
		}
		return entry, nil
	}

	entry = models.HabitLog{
		UserID:      actor.ID,
		HabitID:     habitID,
		LogDate:     logDate,
		Completed:   completed,
		Note:        note,
		CompletedAt: completedAt,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.HabitLog{}, err
	}
	return entry, nil
}

func (service *HabitLogService) MyLogsForDate(actor models.User, date time.Time) ([]models.HabitLog, error) {
	return service.logs.ListByUserAndDate(actor.ID, DateOnly(date))
}

func (service *HabitLogService) FamilyLogsForDate(actor models.User, date time.Time) ([]models.HabitLog, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}
	return service.logs.ListByFamilyAndDate(*actor.FamilyID, DateOnly(date))
}

func (service *HabitLogService) FamilyLogsForRange(actor models.User, from time.Time, to time.Time) ([]models.HabitLog, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}
	from = DateOnly(from)
	to = DateOnly(to)
	if to.Before(from) {
		return nil, ErrInvalidInput
	}
	return service.logs.ListByFamilyAndRange(*actor.FamilyID, from, to)
}
