// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// a single connection keeps the in-memory database alive and serialized
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3001,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		ExpectedDiners:    500,
		WasteReductionPct: 28,
		CostSavingsINR:    17000,
	}
}

// SeedStudent inserts a students row and returns its row ID.
func SeedStudent(t *testing.T, conn *sql.DB, studentID, name string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO students (id, student_id, name, email, created_at)
		VALUES ($1, $2, $3, '', $4)
	`, id, studentID, name, time.Now())
	if err != nil {
		t.Fatalf("Failed to seed student: %v", err)
	}

	return id
}

// SeedWeeklyOption configures one voting option.
func SeedWeeklyOption(t *testing.T, conn *sql.DB, day, mealType, optionText string, position int) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO weekly_menu_options (id, day, meal_type, option_text, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, day, mealType, optionText, position, time.Now())
	if err != nil {
		t.Fatalf("Failed to seed weekly option: %v", err)
	}

	return id
}

// SeedPreference inserts a meal preference row for the given date.
func SeedPreference(t *testing.T, conn *sql.DB, studentID, mealType, date, eatingStatus, portionSize string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO meal_preferences (id, student_id, meal_type, date, eating_status, portion_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, studentID, mealType, date, eatingStatus, portionSize, time.Now())
	if err != nil {
		t.Fatalf("Failed to seed preference: %v", err)
	}

	return id
}

// SeedFeedback inserts a feedback row with an explicit creation time so
// ordering and time-ago behavior can be tested.
func SeedFeedback(t *testing.T, conn *sql.DB, studentID, text string, rating int, date string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO feedback (id, student_id, feedback_text, rating, meal_type, date, created_at)
		VALUES ($1, $2, $3, $4, 'general', $5, $6)
	`, id, studentID, text, rating, date, createdAt)
	if err != nil {
		t.Fatalf("Failed to seed feedback: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
