// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/identity"
	"github.com/danielhkuo/nourish-hub/middleware"
	"github.com/danielhkuo/nourish-hub/models"
)

type FeedbackHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewFeedbackHandler(db *sql.DB, cfg cliparse.Config) *FeedbackHandler {
	return &FeedbackHandler{db: db, cfg: cfg}
}

// Submit handles POST /api/feedback
// The rating must be an integer in [1,5]; anything else is rejected with
// the {success:false, error} shape and no row is written. feedback_text
// defaults to an "N-star rating" label, meal_type to "general".
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		rejectFeedback(w, "Invalid JSON")
		return
	}

	if req.StudentID == "" {
		rejectFeedback(w, "student_id is required")
		return
	}
	if !identity.ValidStudentID(req.StudentID) {
		rejectFeedback(w, "student_id must match STU###")
		return
	}

	rating, err := parseRating(req.Rating)
	if err != nil {
		rejectFeedback(w, err.Error())
		return
	}

	feedbackText := strings.TrimSpace(req.FeedbackText)
	if feedbackText == "" {
		feedbackText = fmt.Sprintf("%d-star rating", rating)
	}

	mealType := req.MealType
	if mealType == "" {
		mealType = models.MealTypeGeneral
	}

	if err := EnsureStudent(h.db, req.StudentID); err != nil {
		slog.Error("failed to register student", "error", err, "student_id", req.StudentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	id := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO feedback (id, student_id, feedback_text, rating, meal_type, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, req.StudentID, feedbackText, rating, mealType, today(), time.Now())

	if err != nil {
		slog.Error("failed to save feedback", "error", err, "student_id", req.StudentID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	slog.Info("feedback saved", "student_id", req.StudentID, "rating", rating)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitFeedbackResponse{
		Success: true,
		ID:      id,
	})
}

// GetRecent handles GET /api/feedback/recent?limit=N
// Returns the most recent feedback newest first, joined to the student's
// display name, each annotated with a coarse time-ago label.
func (h *FeedbackHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := h.db.Query(`
		SELECT f.id, f.student_id, s.name, f.feedback_text, f.rating, f.created_at
		FROM feedback f
		LEFT JOIN students s ON f.student_id = s.student_id
		ORDER BY f.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		slog.Error("failed to query feedback", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	now := time.Now()
	feedback := []models.FeedbackEntry{}
	for rows.Next() {
		var id, studentID, text string
		var name sql.NullString
		var rating int
		var createdAt time.Time
		if err := rows.Scan(&id, &studentID, &name, &text, &rating, &createdAt); err != nil {
			slog.Error("failed to scan feedback row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		displayName := name.String
		if displayName == "" {
			displayName = identity.FallbackName(studentID)
		}

		feedback = append(feedback, models.FeedbackEntry{
			ID:       id,
			Name:     displayName,
			Feedback: text,
			Rating:   rating,
			Time:     timeAgo(createdAt, now),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, feedback)
}

// rejectFeedback writes the endpoint's bespoke rejection shape.
func rejectFeedback(w http.ResponseWriter, message string) {
	middleware.JSONResponse(w, http.StatusBadRequest, models.FeedbackErrorResponse{
		Success: false,
		Error:   message,
	})
}

// parseRating accepts a JSON number or a numeric string and enforces the
// 1-5 star scale.
func parseRating(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, errors.New("rating is required")
	}

	var rating int
	if err := json.Unmarshal(raw, &rating); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errors.New("rating must be an integer between 1 and 5")
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errors.New("rating must be an integer between 1 and 5")
		}
		rating = n
	}

	if rating < 1 || rating > 5 {
		return 0, errors.New("rating must be an integer between 1 and 5")
	}

	return rating, nil
}

// timeAgo renders a deliberately coarse relative age: whole days, then
// whole hours, then "just now". No minutes granularity.
func timeAgo(t, now time.Time) string {
	diff := now.Sub(t)

	if days := int(diff.Hours() / 24); days >= 1 {
		return fmt.Sprintf("%dd ago", days)
	}
	if hours := int(diff.Hours()); hours >= 1 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return "just now"
}
