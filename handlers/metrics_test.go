package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/models"
)

func getMetrics(t *testing.T, conn *sql.DB, cfg cliparse.Config) models.MetricsResponse {
	t.Helper()

	handler := NewMetricsHandler(conn, cfg)
	req := httptest.NewRequest("GET", "/api/metrics", nil)
	w := httptest.NewRecorder()
	handler.GetMetrics(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GetMetrics failed: %d - %s", w.Code, w.Body.String())
	}

	var resp models.MetricsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode metrics: %v", err)
	}
	return resp
}

func seedPreferenceRow(t *testing.T, conn *sql.DB, studentID, date, status string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO students (id, student_id, name, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (student_id) DO NOTHING
	`, uuid.NewString(), studentID, "Student "+studentID)
	if err != nil {
		t.Fatalf("Failed to seed student: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO meal_preferences (id, student_id, meal_type, eating_status, portion_size, date, created_at)
		VALUES ($1, $2, 'lunch', $3, 'medium', $4, CURRENT_TIMESTAMP)
	`, uuid.NewString(), studentID, status, date)
	if err != nil {
		t.Fatalf("Failed to seed preference: %v", err)
	}
}

func TestMetricsEmptyDatabase(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	resp := getMetrics(t, conn, getTestConfig())

	if resp.ConfirmationRate.Value != "0%" {
		t.Errorf("Expected 0%% confirmation rate, got %q", resp.ConfirmationRate.Value)
	}
	if resp.AvgSatisfaction.Value != "0.0/5" {
		t.Errorf("Expected 0.0/5 satisfaction, got %q", resp.AvgSatisfaction.Value)
	}
	if resp.AvgSatisfaction.Change != "Based on 0 responses" {
		t.Errorf("Expected zero sample count, got %q", resp.AvgSatisfaction.Change)
	}
}

func TestMetricsConfirmationRate(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	cfg.ExpectedDiners = 10

	// 4 eating today, 1 skipping; skip must not count
	for i, status := range []string{"yes", "yes", "limited", "tiffin", "skip"} {
		seedPreferenceRow(t, conn, fmt.Sprintf("STU%03d", 200+i), today(), status)
	}

	resp := getMetrics(t, conn, cfg)

	if resp.ConfirmationRate.Value != "40%" {
		t.Errorf("Expected 40%% (4 of 10 expected diners), got %q", resp.ConfirmationRate.Value)
	}
}

func TestMetricsConfirmationTrend(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	// more confirmations a week ago than today
	seedPreferenceRow(t, conn, "STU101", daysBack(7), "yes")
	seedPreferenceRow(t, conn, "STU102", daysBack(7), "yes")
	seedPreferenceRow(t, conn, "STU103", today(), "yes")

	resp := getMetrics(t, conn, getTestConfig())

	if resp.ConfirmationRate.Trend != "down" {
		t.Errorf("Expected downward trend, got %q", resp.ConfirmationRate.Trend)
	}

	// now today overtakes last week
	seedPreferenceRow(t, conn, "STU104", today(), "yes")
	seedPreferenceRow(t, conn, "STU105", today(), "limited")

	resp = getMetrics(t, conn, getTestConfig())

	if resp.ConfirmationRate.Trend != "up" {
		t.Errorf("Expected upward trend, got %q", resp.ConfirmationRate.Trend)
	}
}

func TestMetricsAvgSatisfaction(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	if _, err := conn.Exec(`
		INSERT INTO students (id, student_id, name, created_at)
		VALUES ($1, 'STU001', 'Rahul Kumar', CURRENT_TIMESTAMP)
	`, uuid.NewString()); err != nil {
		t.Fatalf("Failed to seed student: %v", err)
	}

	for _, rating := range []int{5, 4} {
		_, err := conn.Exec(`
			INSERT INTO feedback (id, student_id, feedback_text, rating, meal_type, date, created_at)
			VALUES ($1, 'STU001', 'test', $2, 'general', $3, $4)
		`, uuid.NewString(), rating, today(), time.Now())
		if err != nil {
			t.Fatalf("Failed to seed feedback: %v", err)
		}
	}

	// feedback older than the 7-day window must not count
	_, err := conn.Exec(`
		INSERT INTO feedback (id, student_id, feedback_text, rating, meal_type, date, created_at)
		VALUES ($1, 'STU001', 'stale', 1, 'general', $2, $3)
	`, uuid.NewString(), daysBack(10), time.Now())
	if err != nil {
		t.Fatalf("Failed to seed stale feedback: %v", err)
	}

	resp := getMetrics(t, conn, getTestConfig())

	if resp.AvgSatisfaction.Value != "4.5/5" {
		t.Errorf("Expected 4.5/5, got %q", resp.AvgSatisfaction.Value)
	}
	if resp.AvgSatisfaction.Change != "Based on 2 responses" {
		t.Errorf("Expected 2 responses, got %q", resp.AvgSatisfaction.Change)
	}
	if resp.AvgSatisfaction.Trend != "up" {
		t.Errorf("Expected upward trend, got %q", resp.AvgSatisfaction.Trend)
	}
}

func TestMetricsConfiguredEstimates(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	cfg := getTestConfig()
	cfg.WasteReductionPct = 35
	cfg.CostSavingsINR = 22000

	resp := getMetrics(t, conn, cfg)

	if resp.WasteReduction.Value != "35%" {
		t.Errorf("Expected configured waste value, got %q", resp.WasteReduction.Value)
	}
	if resp.CostSavings.Value != "₹22k" {
		t.Errorf("Expected configured savings value, got %q", resp.CostSavings.Value)
	}
	if resp.WasteReduction.Change != "configured estimate" {
		t.Errorf("Expected estimate label, got %q", resp.WasteReduction.Change)
	}
}
