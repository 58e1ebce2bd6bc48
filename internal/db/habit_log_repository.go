package db

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type HabitLogRepository struct {
	database *gorm.DB
}

func NewHabitLogRepository(database *gorm.DB) *HabitLogRepository {
	return &HabitLogRepository{database: database}
}

func (repo *HabitLogRepository) FindByUserHabitDate(userID uint, habitID uint, logDate time.Time) (models.HabitLog, bool, error) {
	var entry models.HabitLog
	result := repo.database.
		Where("user_id = ? AND habit_id = ? AND log_date = ?", userID, habitID, logDate).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.HabitLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HabitLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *HabitLogRepository) ListCompletedByHabit(habitID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("habit_id = ? AND completed = ?", habitID, true).
		Order("log_date DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByUserAndDate(userID uint, logDate time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("user_id = ? AND log_date = ?", userID, logDate).
		Order("habit_id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByFamilyAndDate(familyID uint, logDate time.Time) ([]models.HabitLog, error) {
	return repo.listByFamilyAndRange(familyID, logDate, logDate)
}

func (repo *HabitLogRepository) ListByFamilyAndRange(familyID uint, from time.Time, to time.Time) ([]models.HabitLog, error) {
	return repo.listByFamilyAndRange(familyID, from, to)
}

func (repo *HabitLogRepository) listByFamilyAndRange(familyID uint, from time.Time, to time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Joins("JOIN habits ON habits.id = habit_logs.habit_id").
		Where("habits.family_id = ? AND habit_logs.log_date >= ? AND habit_logs.log_date <= ?", familyID, from, to).
		Order("habit_logs.log_date ASC, habit_logs.id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) Create(entry *models.HabitLog) error {
	return repo.database.Create(entry).Error
}

func (repo *HabitLogRepository) Save(entry *models.HabitLog) error {
	return repo.database.Save(entry).Error
}
