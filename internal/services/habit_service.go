package services

import (
	"strings"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

type HabitRepository interface {
	FindByID(habitID uint) (models.Habit, error)
	ListByFamily(familyID uint) ([]models.Habit, error)
	ListByUser(userID uint) ([]models.Habit, error)
	MaxDisplayOrder(userID uint) (int, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	SaveAll(habits []models.Habit) error
	Delete(habitID uint) error
}

type HabitLogReader interface {
	ListCompletedByHabit(habitID uint) ([]models.HabitLog, error)
}

type HabitService struct {
	habits HabitRepository
	logs   HabitLogReader
	now    func() time.Time
}

func NewHabitService(habits HabitRepository, logs HabitLogReader, now func() time.Time) *HabitService {
	return &HabitService{habits: habits, logs: logs, now: now}
}

type HabitInput struct {
	Name         string
	Description  string
	Color        string
	Icon         string
	Cadence      string
	Weekdays     []int
	WeeklyTarget int
}

// HabitWithStreak pairs a habit with its current streak for list views.
type HabitWithStreak struct {
	models.Habit
	Streak int `json:"streak"`
}

func (service *HabitService) CreateHabit(actor models.User, input HabitInput) (models.Habit, error) {
	if actor.FamilyID == nil {
		return models.Habit{}, ErrNoFamily
	}
	if err := validateHabitInput(&input); err != nil {
		return models.Habit{}, err
	}

	maxOrder, err := service.habits.MaxDisplayOrder(actor.ID)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		UserID:       actor.ID,
		FamilyID:     *actor.FamilyID,
		Name:         input.Name,
		Description:  input.Description,
		Color:        input.Color,
		Icon:         input.Icon,
		DisplayOrder: maxOrder + 1,
		Cadence:      input.Cadence,
		Weekdays:     input.Weekdays,
		WeeklyTarget: input.WeeklyTarget,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// ListFamilyHabits returns every habit in the actor's family together with
// its current streak.
func (service *HabitService) ListFamilyHabits(actor models.User) ([]HabitWithStreak, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}

	habits, err := service.habits.ListByFamily(*actor.FamilyID)
	if err != nil {
		return nil, err
	}

	today := DateOnly(service.now())
	withStreaks := make([]HabitWithStreak, 0, len(habits))
	for _, habit := range habits {
		completedLogs, err := service.logs.ListCompletedByHabit(habit.ID)
		if err != nil {
			return nil, err
		}
		completedDates := make([]time.Time, 0, len(completedLogs))
		for _, logEntry := range completedLogs {
			completedDates = append(completedDates, logEntry.LogDate)
		}
		withStreaks = append(withStreaks, HabitWithStreak{
			Habit:  habit,
			Streak: Streak(habit, completedDates, today),
		})
	}
	return withStreaks, nil
}

func (service *HabitService) UpdateHabit(actor models.User, habitID uint, input HabitInput) (models.Habit, error) {
	habit, err := service.ownedHabit(actor, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if err := validateHabitInput(&input); err != nil {
		return models.Habit{}, err
	}

	habit.Name = input.Name
	habit.Description = input.Description
	habit.Color = input.Color
	habit.Icon = input.Icon
	habit.Cadence = input.Cadence
	habit.Weekdays = input.Weekdays
	habit.WeeklyTarget = input.WeeklyTarget
	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// DeleteHabit removes the habit and cascades to its logs.
func (service *HabitService) DeleteHabit(actor models.User, habitID uint) error {
	if _, err := service.ownedHabit(actor, habitID); err != nil {
		return err
	}
	return service.habits.Delete(habitID)
}

// ReorderHabit swaps the habit's display order with its neighbor in the
// actor's ordered habit list. Moving the first habit up or the last one down
// is a no-op.
func (service *HabitService) ReorderHabit(actor models.User, habitID uint, direction string) error {
	habit, err := service.ownedHabit(actor, habitID)
	if err != nil {
		return err
	}

	userHabits, err := service.habits.ListByUser(actor.ID)
	if err != nil {
		return err
	}

	currentIndex := -1
	for index := range userHabits {
		if userHabits[index].ID == habitID {
			currentIndex = index
			break
		}
	}
	if currentIndex == -1 {
		return ErrNotFound
	}

	var neighbor *models.Habit
	switch direction {
	case "up":
		if currentIndex > 0 {
			neighbor = &userHabits[currentIndex-1]
		}
	case "down":
		if currentIndex < len(userHabits)-1 {
			neighbor = &userHabits[currentIndex+1]
		}
	default:
		return ErrInvalidInput
	}
	if neighbor == nil {
		return nil
	}

	habit.DisplayOrder, neighbor.DisplayOrder = neighbor.DisplayOrder, habit.DisplayOrder
	return service.habits.SaveAll([]models.Habit{habit, *neighbor})
}

type ReorderUpdate struct {
	HabitID      uint `json:"id"`
	DisplayOrder int  `json:"display_order"`
}

// ReorderHabitsBatch applies explicit display orders to the actor's habits in
// one shot. Every referenced habit must belong to the actor.
func (service *HabitService) ReorderHabitsBatch(actor models.User, updates []ReorderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	changed := make([]models.Habit, 0, len(updates))
	for _, update := range updates {
		habit, err := service.ownedHabit(actor, update.HabitID)
		if err != nil {
			return err
		}
		habit.DisplayOrder = update.DisplayOrder
		changed = append(changed, habit)
	}
	return service.habits.SaveAll(changed)
}

func (service *HabitService) ownedHabit(actor models.User, habitID uint) (models.Habit, error) {
	habit, err := service.habits.FindByID(habitID)
	if err != nil {
		return models.Habit{}, asNotFound(err)
	}
	if habit.UserID != actor.ID {
		return models.Habit{}, ErrUnauthorized
	}
	return habit, nil
}

func validateHabitInput(input *HabitInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrInvalidInput
	}
	if input.Color == "" {
		input.Color = "#4CAF50"
	}
	if input.Cadence == "" {
		input.Cadence = models.CadenceDaily
	}
	if !models.ValidCadence(input.Cadence) {
		return ErrInvalidInput
	}

	switch input.Cadence {
	case models.CadenceWeekly:
		if !models.ValidWeekdays(input.Weekdays) {
			return ErrInvalidInput
		}
		input.WeeklyTarget = 0
	case models.CadenceWeeklyCount:
		if input.WeeklyTarget < 1 {
			return ErrInvalidInput
		}
		input.Weekdays = nil
	default:
		input.Weekdays = nil
		input.WeeklyTarget = 0
	}
	return nil
}
