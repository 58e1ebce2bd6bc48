package db

import (
	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) FindByID(habitID uint) (models.Habit, error) {
	var habit models.Habit
	if err := repo.database.First(&habit, habitID).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) ListByFamily(familyID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("family_id = ?", familyID).
		Order("display_order ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("display_order ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) MaxDisplayOrder(userID uint) (int, error) {
	var maxOrder *int
	if err := repo.database.Model(&models.Habit{}).
		Where("user_id = ?", userID).
		Select("MAX(display_order)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return -1, nil
	}
	return *maxOrder, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

func (repo *HabitRepository) SaveAll(habits []models.Habit) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for index := range habits {
			if err := tx.Save(&habits[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a habit together with its logs.
func (repo *HabitRepository) Delete(habitID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, habitID).Error
	})
}
