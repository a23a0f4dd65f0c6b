// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/identity"
	"github.com/danielhkuo/nourish-hub/middleware"
	"github.com/danielhkuo/nourish-hub/models"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// GetWeeklyOptions handles GET /api/voting/weekly-options
// Returns the configured options grouped by day, insertion order
// preserved within each list. Days with no options are omitted.
func (h *VotingHandler) GetWeeklyOptions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT day, meal_type, option_text
		FROM weekly_menu_options
		ORDER BY day, meal_type, position
	`)
	if err != nil {
		slog.Error("failed to query weekly options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	options := models.WeeklyOptionsMap{}
	for rows.Next() {
		var day, mealType, optionText string
		if err := rows.Scan(&day, &mealType, &optionText); err != nil {
			slog.Error("failed to scan option row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		entry := options[day]
		switch mealType {
		case models.MealLunch:
			entry.Lunch = append(entry.Lunch, optionText)
		case models.MealDinner:
			entry.Dinner = append(entry.Dinner, optionText)
		}
		options[day] = entry
	}

	middleware.JSONResponse(w, http.StatusOK, options)
}

// SetWeeklyOptions handles POST /api/voting/weekly-options
// Replaces the entire option set: everything configured before the call
// is deleted and every non-empty trimmed option in the body is inserted,
// all inside one transaction. A day omitted from the body ends up with
// no options at all.
func (h *VotingHandler) SetWeeklyOptions(w http.ResponseWriter, r *http.Request) {
	var req models.WeeklyOptionsMap
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	for day := range req {
		if !models.ValidDay(day) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown day: "+day)
			return
		}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM weekly_menu_options`); err != nil {
		slog.Error("failed to clear weekly options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save options")
		return
	}

	inserted := 0
	// walk weekdays in calendar order so positions are deterministic
	for _, day := range models.Weekdays {
		entry, ok := req[day]
		if !ok {
			continue
		}

		for mealType, list := range map[string][]string{
			models.MealLunch:  entry.Lunch,
			models.MealDinner: entry.Dinner,
		} {
			pos := 0
			for _, raw := range list {
				text := strings.TrimSpace(raw)
				if text == "" {
					continue
				}

				_, err := tx.Exec(`
					INSERT INTO weekly_menu_options (id, day, meal_type, option_text, position, created_at)
					VALUES ($1, $2, $3, $4, $5, $6)
					ON CONFLICT (day, meal_type, option_text) DO NOTHING
				`, uuid.NewString(), day, mealType, text, pos, time.Now())
				if err != nil {
					slog.Error("failed to insert option", "error", err, "day", day, "meal_type", mealType)
					middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save options")
					return
				}
				pos++
				inserted++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit weekly options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save options")
		return
	}

	slog.Info("weekly options replaced", "inserted", inserted)

	middleware.JSONResponse(w, http.StatusOK, models.SetWeeklyOptionsResponse{Success: true})
}

// SubmitVote handles POST /api/voting/weekly-vote
// One vote per (student, day, meal_type); a new vote supersedes the old
// one through the unique key, last write wins. The chosen option must be
// among the currently configured options for that slot.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.StudentID == "" || req.Day == "" || req.MealType == "" || req.OptionText == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !identity.ValidStudentID(req.StudentID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "student_id must match STU###")
		return
	}
	if !models.ValidDay(req.Day) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown day: "+req.Day)
		return
	}
	if !models.ValidMealType(req.MealType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "meal_type must be lunch or dinner")
		return
	}

	// Only configured options are votable; a vote for an option removed
	// by a later manager update is rejected rather than silently counted.
	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM weekly_menu_options
			WHERE day = $1 AND meal_type = $2 AND option_text = $3
		)
	`, req.Day, req.MealType, req.OptionText).Scan(&exists)
	if err != nil {
		slog.Error("failed to verify option", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option is not configured for this day and meal")
		return
	}

	if err := EnsureStudent(h.db, req.StudentID); err != nil {
		slog.Error("failed to register student", "error", err, "student_id", req.StudentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	var id string
	err = h.db.QueryRow(`
		INSERT INTO weekly_votes (id, student_id, day, meal_type, option_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (student_id, day, meal_type) DO UPDATE
			SET option_text = excluded.option_text,
			    created_at = excluded.created_at
		RETURNING id
	`, uuid.NewString(), req.StudentID, req.Day, req.MealType, req.OptionText, time.Now()).Scan(&id)

	if err != nil {
		slog.Error("failed to save vote", "error", err, "student_id", req.StudentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	slog.Info("vote recorded",
		"student_id", req.StudentID,
		"day", req.Day,
		"meal_type", req.MealType,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Success: true,
		ID:      id,
	})
}

// GetWeeklyResults handles GET /api/voting/weekly-results
// Returns vote tallies keyed "{day}_{meal_type}" → option → count.
// No votes yields an empty mapping.
func (h *VotingHandler) GetWeeklyResults(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT day, meal_type, option_text, COUNT(*)
		FROM weekly_votes
		GROUP BY day, meal_type, option_text
	`)
	if err != nil {
		slog.Error("failed to query vote results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := models.WeeklyResults{}
	for rows.Next() {
		var day, mealType, optionText string
		var count int
		if err := rows.Scan(&day, &mealType, &optionText, &count); err != nil {
			slog.Error("failed to scan vote tally", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		key := day + "_" + mealType
		if results[key] == nil {
			results[key] = map[string]int{}
		}
		results[key][optionText] = count
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
