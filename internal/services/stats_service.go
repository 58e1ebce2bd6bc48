package services

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

type StatsLogReader interface {
	ListByFamilyAndRange(familyID uint, from time.Time, to time.Time) ([]models.HabitLog, error)
}

type StatsHabitReader interface {
	ListByFamily(familyID uint) ([]models.Habit, error)
}

type StatsMemberReader interface {
	ListByFamily(familyID uint) ([]models.User, error)
}

type StatsService struct {
	logs    StatsLogReader
	habits  StatsHabitReader
	members StatsMemberReader
	now     func() time.Time
}

func NewStatsService(logs StatsLogReader, habits StatsHabitReader, members StatsMemberReader, now func() time.Time) *StatsService {
	return &StatsService{logs: logs, habits: habits, members: members, now: now}
}

// MonthlyStats loads the family's month of logs and derives the full stats
// structure fresh. Nothing is cached across requests.
func (service *StatsService) MonthlyStats(actor models.User, year int, month time.Month) (MonthStats, error) {
	if actor.FamilyID == nil {
		return MonthStats{}, ErrNoFamily
	}
	if month < time.January || month > time.December || year < 1 {
		return MonthStats{}, ErrInvalidInput
	}

	today := DateOnly(service.now())
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	logs, err := service.logs.ListByFamilyAndRange(*actor.FamilyID, monthStart, monthEnd)
	if err != nil {
		return MonthStats{}, err
	}
	habits, err := service.habits.ListByFamily(*actor.FamilyID)
	if err != nil {
		return MonthStats{}, err
	}
	members, err := service.members.ListByFamily(*actor.FamilyID)
	if err != nil {
		return MonthStats{}, err
	}

	return AggregateMonth(year, month, logs, habits, members, today), nil
}
