// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/identity"
	"github.com/danielhkuo/nourish-hub/middleware"
	"github.com/danielhkuo/nourish-hub/models"
)

type PreferenceHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPreferenceHandler(db *sql.DB, cfg cliparse.Config) *PreferenceHandler {
	return &PreferenceHandler{db: db, cfg: cfg}
}

// Submit handles POST /api/preferences
// Records a student's attendance intent and portion size for today.
// Resubmitting the same (student, meal, date) replaces the prior row in
// a single upsert, so concurrent submissions can never leave zero or
// two rows for the slot.
func (h *PreferenceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitPreferenceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.StudentID == "" || req.MealType == "" || req.EatingStatus == "" || req.PortionSize == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !identity.ValidStudentID(req.StudentID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "student_id must match STU###")
		return
	}
	if !models.ValidMealType(req.MealType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "meal_type must be lunch or dinner")
		return
	}
	if !models.ValidEatingStatus(req.EatingStatus) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "eating_status must be one of: yes, limited, tiffin, skip")
		return
	}
	if !models.ValidPortionSize(req.PortionSize) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "portion_size must be one of: small, medium, large")
		return
	}

	if err := EnsureStudent(h.db, req.StudentID); err != nil {
		slog.Error("failed to register student", "error", err, "student_id", req.StudentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save preference")
		return
	}

	var id string
	err := h.db.QueryRow(`
		INSERT INTO meal_preferences (id, student_id, meal_type, date, eating_status, portion_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_id, meal_type, date) DO UPDATE
			SET eating_status = excluded.eating_status,
			    portion_size = excluded.portion_size,
			    created_at = excluded.created_at
		RETURNING id
	`, uuid.NewString(), req.StudentID, req.MealType, today(), req.EatingStatus, req.PortionSize, time.Now()).Scan(&id)

	if err != nil {
		slog.Error("failed to save preference", "error", err, "student_id", req.StudentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save preference")
		return
	}

	slog.Info("preference saved",
		"student_id", req.StudentID,
		"meal_type", req.MealType,
		"eating_status", req.EatingStatus,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitPreferenceResponse{
		Success: true,
		ID:      id,
	})
}

// GetStatsToday handles GET /api/stats/today
// Groups today's preferences by (meal_type, eating_status, portion_size)
// and shapes them for the dashboard. Skipped entries have no portion, so
// they are excluded from portion tallies.
func (h *PreferenceHandler) GetStatsToday(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT meal_type, eating_status, portion_size, COUNT(*)
		FROM meal_preferences
		WHERE date = $1
		GROUP BY meal_type, eating_status, portion_size
	`, today())
	if err != nil {
		slog.Error("failed to query stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	var stats models.TodayStats
	for rows.Next() {
		var mealType, eatingStatus, portionSize string
		var count int
		if err := rows.Scan(&mealType, &eatingStatus, &portionSize, &count); err != nil {
			slog.Error("failed to scan stats row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		var meal *models.MealStats
		switch mealType {
		case models.MealLunch:
			meal = &stats.Lunch
		case models.MealDinner:
			meal = &stats.Dinner
		default:
			continue
		}

		tally(meal, eatingStatus, portionSize, count)
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

func tally(meal *models.MealStats, eatingStatus, portionSize string, count int) {
	meal.Total += count

	switch eatingStatus {
	case models.EatingYes:
		meal.Yes += count
	case models.EatingLimited:
		meal.Limited += count
	case models.EatingTiffin:
		meal.Tiffin += count
	case models.EatingSkip:
		meal.Skip += count
		// a student who skips has no portion
		return
	}

	switch portionSize {
	case models.PortionSmall:
		meal.Portions.Small += count
	case models.PortionMedium:
		meal.Portions.Medium += count
	case models.PortionLarge:
		meal.Portions.Large += count
	}
}
