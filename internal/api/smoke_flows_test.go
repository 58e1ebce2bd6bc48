package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tannerhall/hearth/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "hearth.db"))
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}

	handler := NewHandler(db.NewRepositories(database), "test-secret", time.Hour, time.Now)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload failed: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	decoded := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	decoded := []map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func registerUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "correct horse",
	})
	if status != http.StatusCreated {
		t.Fatalf("register returned %d: %v", status, body)
	}
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("register returned no token: %v", body)
	}
	return token
}

func TestHabitLifecycleFlow(t *testing.T) {
	app := newTestApp(t)
	token := registerUser(t, app, "anna")

	status, body := doJSON(t, app, http.MethodPost, "/api/family", token, map[string]any{"name": "The Halls"})
	if status != http.StatusCreated {
		t.Fatalf("create family returned %d: %v", status, body)
	}

	status, habit := doJSON(t, app, http.MethodPost, "/api/habits", token, map[string]any{
		"name":    "Dishes",
		"cadence": "DAILY",
	})
	if status != http.StatusCreated {
		t.Fatalf("create habit returned %d: %v", status, habit)
	}
	habitID := habit["id"].(float64)

	today := time.Now().Format("2006-01-02")
	status, entry := doJSON(t, app, http.MethodPost, "/api/logs", token, map[string]any{
		"habit_id":  habitID,
		"date":      today,
		"completed": true,
	})
	if status != http.StatusOK {
		t.Fatalf("log habit returned %d: %v", status, entry)
	}
	if entry["completed"] != true {
		t.Fatalf("expected completed log, got %v", entry)
	}

	status, habits := doJSONList(t, app, "/api/habits", token)
	if status != http.StatusOK {
		t.Fatalf("list habits returned %d", status)
	}
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}
	if habits[0]["streak"].(float64) != 1 {
		t.Fatalf("expected streak 1, got %v", habits[0]["streak"])
	}

	now := time.Now()
	statsPath := fmt.Sprintf("/api/stats/monthly?year=%d&month=%d", now.Year(), int(now.Month()))
	status, stats := doJSON(t, app, http.MethodGet, statsPath, token, nil)
	if status != http.StatusOK {
		t.Fatalf("monthly stats returned %d: %v", status, stats)
	}
	if stats["year"].(float64) != float64(now.Year()) {
		t.Fatalf("unexpected stats year: %v", stats["year"])
	}
}

func TestFamilyJoinFlow(t *testing.T) {
	app := newTestApp(t)
	ownerToken := registerUser(t, app, "anna")
	joinerToken := registerUser(t, app, "ben")

	status, family := doJSON(t, app, http.MethodPost, "/api/family", ownerToken, map[string]any{"name": "The Halls"})
	if status != http.StatusCreated {
		t.Fatalf("create family returned %d: %v", status, family)
	}
	inviteCode := family["invite_code"].(string)

	status, joined := doJSON(t, app, http.MethodPost, "/api/family/join", joinerToken, map[string]any{"invite_code": inviteCode})
	if status != http.StatusOK {
		t.Fatalf("join family returned %d: %v", status, joined)
	}

	status, overview := doJSON(t, app, http.MethodGet, "/api/family", joinerToken, nil)
	if status != http.StatusOK {
		t.Fatalf("get family returned %d: %v", status, overview)
	}
	members := overview["members"].([]any)
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}

	status, body := doJSON(t, app, http.MethodPost, "/api/family/join", joinerToken, map[string]any{"invite_code": "WRONG000"})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for repeat join, got %d: %v", status, body)
	}
}

func TestAuthIsRequired(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/habits", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	status, _ = doJSON(t, app, http.MethodGet, "/api/habits", "not-a-token", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a bad token, got %d", status)
	}
}

func TestHealthRecordFlow(t *testing.T) {
	app := newTestApp(t)
	token := registerUser(t, app, "anna")
	doJSON(t, app, http.MethodPost, "/api/family", token, map[string]any{"name": "The Halls"})

	status, record := doJSON(t, app, http.MethodPost, "/api/health", token, map[string]any{
		"record_type": "BLOOD_PRESSURE",
		"record_date": "2025-03-10",
		"systolic":    120,
		"diastolic":   80,
	})
	if status != http.StatusCreated {
		t.Fatalf("create record returned %d: %v", status, record)
	}
	recordID := record["id"].(float64)

	status, updated := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/health/%.0f", recordID), token, map[string]any{
		"systolic":  118,
		"diastolic": 79,
		"note":      "evening",
	})
	if status != http.StatusOK {
		t.Fatalf("update record returned %d: %v", status, updated)
	}
	if updated["systolic"].(float64) != 118 {
		t.Fatalf("expected updated systolic 118, got %v", updated["systolic"])
	}

	status, mine := doJSONList(t, app, "/api/health/my?type=BLOOD_PRESSURE&from=2025-03-01&to=2025-03-31", token)
	if status != http.StatusOK {
		t.Fatalf("list my records returned %d", status)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 record, got %d", len(mine))
	}

	status, chart := doJSONList(t, app, "/api/health/chart?type=BLOOD_PRESSURE&from=2025-03-01&to=2025-03-31", token)
	if status != http.StatusOK {
		t.Fatalf("chart data returned %d", status)
	}
	if len(chart) != 1 {
		t.Fatalf("expected 1 chart point, got %d", len(chart))
	}

	status, body := doJSON(t, app, http.MethodPost, "/api/health", token, map[string]any{
		"record_type": "WEIGHT",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for a weight record without a value, got %d: %v", status, body)
	}
}

func TestCalendarEventFlow(t *testing.T) {
	app := newTestApp(t)
	token := registerUser(t, app, "anna")
	doJSON(t, app, http.MethodPost, "/api/family", token, map[string]any{"name": "The Halls"})

	status, event := doJSON(t, app, http.MethodPost, "/api/calendar/events", token, map[string]any{
		"title":       "Weekly dinner",
		"start_at":    "2025-03-05T18:00:00Z",
		"end_at":      "2025-03-05T19:00:00Z",
		"repeat_type": "WEEKLY",
	})
	if status != http.StatusCreated {
		t.Fatalf("create event returned %d: %v", status, event)
	}

	status, occurrences := doJSONList(t, app, "/api/calendar/events?from=2025-03-01&to=2025-03-31", token)
	if status != http.StatusOK {
		t.Fatalf("list occurrences returned %d", status)
	}
	if len(occurrences) != 4 {
		t.Fatalf("expected 4 occurrences in March, got %d", len(occurrences))
	}
}
