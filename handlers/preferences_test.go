// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/db"
	"github.com/danielhkuo/nourish-hub/models"
)

// setupTestDB creates an in-memory database for testing
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func getTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3001,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		ExpectedDiners:    500,
		WasteReductionPct: 28,
		CostSavingsINR:    17000,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler(w, req)
	return w
}

func TestSubmitPreference(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	handler := NewPreferenceHandler(conn, getTestConfig())

	tests := []struct {
		name           string
		requestBody    models.SubmitPreferenceRequest
		expectedStatus int
	}{
		{
			name: "valid submission",
			requestBody: models.SubmitPreferenceRequest{
				StudentID:    "STU042",
				MealType:     "lunch",
				EatingStatus: "yes",
				PortionSize:  "medium",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing student_id",
			requestBody: models.SubmitPreferenceRequest{
				MealType:     "lunch",
				EatingStatus: "yes",
				PortionSize:  "medium",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing portion_size",
			requestBody: models.SubmitPreferenceRequest{
				StudentID:    "STU042",
				MealType:     "lunch",
				EatingStatus: "yes",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed student_id",
			requestBody: models.SubmitPreferenceRequest{
				StudentID:    "not-a-student",
				MealType:     "lunch",
				EatingStatus: "yes",
				PortionSize:  "medium",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown meal_type",
			requestBody: models.SubmitPreferenceRequest{
				StudentID:    "STU042",
				MealType:     "breakfast",
				EatingStatus: "yes",
				PortionSize:  "medium",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown eating_status",
			requestBody: models.SubmitPreferenceRequest{
				StudentID:    "STU042",
				MealType:     "lunch",
				EatingStatus: "maybe",
				PortionSize:  "medium",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown portion_size",
			requestBody: models.SubmitPreferenceRequest{
				StudentID:    "STU042",
				MealType:     "lunch",
				EatingStatus: "yes",
				PortionSize:  "extra-large",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler.Submit, "/api/preferences", tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK {
				var resp models.SubmitPreferenceResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if !resp.Success || resp.ID == "" {
					t.Errorf("Expected success with id, got %+v", resp)
				}

				// Submission registers the student lazily
				var exists bool
				err := conn.QueryRow(`
					SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)
				`, tt.requestBody.StudentID).Scan(&exists)
				if err != nil {
					t.Fatalf("Failed to check student row: %v", err)
				}
				if !exists {
					t.Error("Expected a students row to be created")
				}
			}
		})
	}
}

func TestPreferenceUpsert(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	handler := NewPreferenceHandler(conn, getTestConfig())

	first := models.SubmitPreferenceRequest{
		StudentID:    "STU007",
		MealType:     "dinner",
		EatingStatus: "yes",
		PortionSize:  "large",
	}
	second := models.SubmitPreferenceRequest{
		StudentID:    "STU007",
		MealType:     "dinner",
		EatingStatus: "tiffin",
		PortionSize:  "small",
	}

	w := postJSON(t, handler.Submit, "/api/preferences", first)
	if w.Code != http.StatusOK {
		t.Fatalf("First submission failed: %d - %s", w.Code, w.Body.String())
	}
	var firstResp models.SubmitPreferenceResponse
	json.NewDecoder(w.Body).Decode(&firstResp)

	w = postJSON(t, handler.Submit, "/api/preferences", second)
	if w.Code != http.StatusOK {
		t.Fatalf("Second submission failed: %d - %s", w.Code, w.Body.String())
	}
	var secondResp models.SubmitPreferenceResponse
	json.NewDecoder(w.Body).Decode(&secondResp)

	// The upsert keeps the original row
	if secondResp.ID != firstResp.ID {
		t.Errorf("Expected resubmission to keep row id %s, got %s", firstResp.ID, secondResp.ID)
	}

	// Exactly one row for the slot, with the later values
	var count int
	if err := conn.QueryRow(`
		SELECT COUNT(*) FROM meal_preferences WHERE student_id = 'STU007' AND meal_type = 'dinner'
	`).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 row, got %d", count)
	}

	var eatingStatus, portionSize string
	if err := conn.QueryRow(`
		SELECT eating_status, portion_size FROM meal_preferences
		WHERE student_id = 'STU007' AND meal_type = 'dinner'
	`).Scan(&eatingStatus, &portionSize); err != nil {
		t.Fatalf("Failed to query row: %v", err)
	}
	if eatingStatus != "tiffin" || portionSize != "small" {
		t.Errorf("Expected later values to win, got %s/%s", eatingStatus, portionSize)
	}
}

func TestStatsReflectSubmission(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	handler := NewPreferenceHandler(conn, cfg)

	readStats := func() models.TodayStats {
		req := httptest.NewRequest("GET", "/api/stats/today", nil)
		w := httptest.NewRecorder()
		handler.GetStatsToday(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Stats request failed: %d - %s", w.Code, w.Body.String())
		}
		var stats models.TodayStats
		if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
			t.Fatalf("Failed to decode stats: %v", err)
		}
		return stats
	}

	before := readStats()

	w := postJSON(t, handler.Submit, "/api/preferences", models.SubmitPreferenceRequest{
		StudentID:    "STU123",
		MealType:     "lunch",
		EatingStatus: "limited",
		PortionSize:  "small",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Submission failed: %d - %s", w.Code, w.Body.String())
	}

	after := readStats()

	// Exactly one increment in the matching buckets, zero elsewhere
	if after.Lunch.Total != before.Lunch.Total+1 {
		t.Errorf("Expected lunch total +1, got %d -> %d", before.Lunch.Total, after.Lunch.Total)
	}
	if after.Lunch.Limited != before.Lunch.Limited+1 {
		t.Errorf("Expected lunch limited +1, got %d -> %d", before.Lunch.Limited, after.Lunch.Limited)
	}
	if after.Lunch.Portions.Small != before.Lunch.Portions.Small+1 {
		t.Errorf("Expected small portion +1, got %d -> %d", before.Lunch.Portions.Small, after.Lunch.Portions.Small)
	}
	if after.Lunch.Yes != before.Lunch.Yes || after.Lunch.Skip != before.Lunch.Skip {
		t.Error("Expected other status buckets unchanged")
	}
	if after.Dinner != before.Dinner {
		t.Error("Expected dinner stats unchanged")
	}
}

func TestStatsExcludeSkippedPortions(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	handler := NewPreferenceHandler(conn, getTestConfig())

	submissions := []models.SubmitPreferenceRequest{
		{StudentID: "STU001", MealType: "lunch", EatingStatus: "yes", PortionSize: "medium"},
		{StudentID: "STU002", MealType: "lunch", EatingStatus: "skip", PortionSize: "medium"},
		{StudentID: "STU003", MealType: "lunch", EatingStatus: "tiffin", PortionSize: "large"},
	}
	for _, sub := range submissions {
		if w := postJSON(t, handler.Submit, "/api/preferences", sub); w.Code != http.StatusOK {
			t.Fatalf("Submission failed: %d - %s", w.Code, w.Body.String())
		}
	}

	req := httptest.NewRequest("GET", "/api/stats/today", nil)
	w := httptest.NewRecorder()
	handler.GetStatsToday(w, req)

	var stats models.TodayStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("Failed to decode stats: %v", err)
	}

	if stats.Lunch.Total != 3 {
		t.Errorf("Expected total 3, got %d", stats.Lunch.Total)
	}
	if stats.Lunch.Skip != 1 {
		t.Errorf("Expected 1 skip, got %d", stats.Lunch.Skip)
	}
	// The skipping student chose medium, but skips carry no portion
	if stats.Lunch.Portions.Medium != 1 {
		t.Errorf("Expected 1 medium portion (the eating student only), got %d", stats.Lunch.Portions.Medium)
	}
	if got := stats.Lunch.Portions.Small + stats.Lunch.Portions.Medium + stats.Lunch.Portions.Large; got != 2 {
		t.Errorf("Expected 2 portions total (skip excluded), got %d", got)
	}
}
