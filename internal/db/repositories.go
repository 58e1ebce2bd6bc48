package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Families *FamilyRepository
	Habits   *HabitRepository
	Logs     *HabitLogRepository
	Events   *CalendarEventRepository
	Comments *CommentRepository
	Records  *HealthRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Families: NewFamilyRepository(database),
		Habits:   NewHabitRepository(database),
		Logs:     NewHabitLogRepository(database),
		Events:   NewCalendarEventRepository(database),
		Comments: NewCommentRepository(database),
		Records:  NewHealthRecordRepository(database),
	}
}
