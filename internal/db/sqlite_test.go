package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

func openTestDB(t *testing.T) *Repositories {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "hearth.db"))
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	return NewRepositories(database)
}

func TestOpenSQLiteBootstrapsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hearth.db")

	database, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}

	expectedTables := []string{"families", "users", "habits", "habit_logs", "calendar_events", "comments", "health_records", "schema_migrations"}
	for _, table := range expectedTables {
		var count int64
		err := database.Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count).Error
		if err != nil {
			t.Fatalf("query sqlite_master failed: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	// Opening the same file again must not re-run applied migrations.
	if _, err := OpenSQLite(dbPath); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
}

func TestHabitLogRepositoryRoundTrip(t *testing.T) {
	repos := openTestDB(t)

	user := models.User{Username: "anna", Email: "anna@example.com", PasswordHash: "x", DisplayName: "Anna"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	family := models.Family{Name: "The Halls", InviteCode: "ABCD1234"}
	if err := repos.Families.Create(&family); err != nil {
		t.Fatalf("create family failed: %v", err)
	}
	if err := repos.Users.UpdateFamilyID(user.ID, &family.ID); err != nil {
		t.Fatalf("update membership failed: %v", err)
	}

	habit := models.Habit{
		UserID:   user.ID,
		FamilyID: family.ID,
		Name:     "Dishes",
		Color:    "#4CAF50",
		Cadence:  models.CadenceWeekly,
		Weekdays: []int{1, 3, 5},
	}
	if err := repos.Habits.Create(&habit); err != nil {
		t.Fatalf("create habit failed: %v", err)
	}

	stored, err := repos.Habits.FindByID(habit.ID)
	if err != nil {
		t.Fatalf("find habit failed: %v", err)
	}
	if len(stored.Weekdays) != 3 || stored.Weekdays[1] != 3 {
		t.Fatalf("weekdays did not round-trip: %v", stored.Weekdays)
	}

	logDate := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	entry := models.HabitLog{UserID: user.ID, HabitID: habit.ID, LogDate: logDate, Completed: true}
	if err := repos.Logs.Create(&entry); err != nil {
		t.Fatalf("create log failed: %v", err)
	}

	found, exists, err := repos.Logs.FindByUserHabitDate(user.ID, habit.ID, logDate)
	if err != nil {
		t.Fatalf("find log failed: %v", err)
	}
	if !exists || !found.Completed {
		t.Fatalf("expected completed log, got exists=%v entry=%+v", exists, found)
	}

	if _, exists, _ = repos.Logs.FindByUserHabitDate(user.ID, habit.ID, logDate.AddDate(0, 0, 1)); exists {
		t.Fatalf("expected no log on the next day")
	}

	familyLogs, err := repos.Logs.ListByFamilyAndDate(family.ID, logDate)
	if err != nil {
		t.Fatalf("family logs failed: %v", err)
	}
	if len(familyLogs) != 1 {
		t.Fatalf("expected 1 family log, got %d", len(familyLogs))
	}
}

func TestHabitDeleteCascadesToLogs(t *testing.T) {
	repos := openTestDB(t)

	user := models.User{Username: "anna", Email: "anna@example.com", PasswordHash: "x", DisplayName: "Anna"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	family := models.Family{Name: "The Halls", InviteCode: "ABCD1234"}
	if err := repos.Families.Create(&family); err != nil {
		t.Fatalf("create family failed: %v", err)
	}

	habit := models.Habit{UserID: user.ID, FamilyID: family.ID, Name: "Dishes", Color: "#4CAF50", Cadence: models.CadenceDaily}
	if err := repos.Habits.Create(&habit); err != nil {
		t.Fatalf("create habit failed: %v", err)
	}
	entry := models.HabitLog{
		UserID:    user.ID,
		HabitID:   habit.ID,
		LogDate:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Completed: true,
	}
	if err := repos.Logs.Create(&entry); err != nil {
		t.Fatalf("create log failed: %v", err)
	}

	if err := repos.Habits.Delete(habit.ID); err != nil {
		t.Fatalf("delete habit failed: %v", err)
	}

	remaining, err := repos.Logs.ListCompletedByHabit(habit.ID)
	if err != nil {
		t.Fatalf("list logs failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected logs removed with their habit, got %d", len(remaining))
	}
}

func TestHealthRecordRepositoryQueries(t *testing.T) {
	repos := openTestDB(t)

	user := models.User{Username: "anna", Email: "anna@example.com", PasswordHash: "x", DisplayName: "Anna"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	family := models.Family{Name: "The Halls", InviteCode: "ABCD1234"}
	if err := repos.Families.Create(&family); err != nil {
		t.Fatalf("create family failed: %v", err)
	}

	weight := 72.5
	days := []int{1, 5, 3}
	for _, day := range days {
		record := models.HealthRecord{
			UserID:     user.ID,
			FamilyID:   family.ID,
			RecordType: models.RecordWeight,
			RecordDate: time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
			Weight:     &weight,
		}
		if err := repos.Records.Create(&record); err != nil {
			t.Fatalf("create record failed: %v", err)
		}
	}

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	mine, err := repos.Records.ListByUserAndRange(user.ID, models.RecordWeight, from, to)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(mine) != 3 || mine[0].RecordDate.Day() != 5 {
		t.Fatalf("expected 3 records newest first, got %d starting at day %d", len(mine), mine[0].RecordDate.Day())
	}

	chart, err := repos.Records.ListForChart(user.ID, models.RecordWeight, from, to)
	if err != nil {
		t.Fatalf("list for chart failed: %v", err)
	}
	if len(chart) != 3 || chart[0].RecordDate.Day() != 1 {
		t.Fatalf("expected chart data oldest first, got day %d", chart[0].RecordDate.Day())
	}

	recent, err := repos.Records.ListRecentByUser(user.ID, models.RecordWeight, 2)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected the recent list capped at 2, got %d", len(recent))
	}

	none, err := repos.Records.ListByUserAndRange(user.ID, models.RecordBloodSugar, from, to)
	if err != nil {
		t.Fatalf("list by type failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no blood sugar records, got %d", len(none))
	}
}

func TestUserRepositoryLookups(t *testing.T) {
	repos := openTestDB(t)

	user := models.User{Username: "anna", Email: "Anna@Example.com", PasswordHash: "x", DisplayName: "Anna"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	taken, err := repos.Users.ExistsByUsername("anna")
	if err != nil {
		t.Fatalf("exists by username failed: %v", err)
	}
	if !taken {
		t.Fatalf("expected username to be taken")
	}

	taken, err = repos.Users.ExistsByNormalizedEmail("anna@example.com")
	if err != nil {
		t.Fatalf("exists by email failed: %v", err)
	}
	if !taken {
		t.Fatalf("expected normalized email to match")
	}
}
