// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/middleware"
	"github.com/danielhkuo/nourish-hub/models"
)

type MenuHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMenuHandler(db *sql.DB, cfg cliparse.Config) *MenuHandler {
	return &MenuHandler{db: db, cfg: cfg}
}

// GetToday handles GET /api/menu/today
// Returns a mapping from meal type to {items, date}. A day with no menu
// yields an empty mapping, not an error.
func (h *MenuHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT meal_type, items, date FROM menu WHERE date = $1
	`, today())
	if err != nil {
		slog.Error("failed to query menu", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	menu := map[string]models.MenuEntry{}
	for rows.Next() {
		var mealType, itemsJSON, date string
		if err := rows.Scan(&mealType, &itemsJSON, &date); err != nil {
			slog.Error("failed to scan menu row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		var items []string
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			slog.Error("failed to parse menu items", "error", err, "meal_type", mealType)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to parse menu")
			return
		}

		menu[mealType] = models.MenuEntry{Items: items, Date: date}
	}

	middleware.JSONResponse(w, http.StatusOK, menu)
}

// SetMenu handles POST /api/menu/set
// Replaces today's menu for the given meal type wholesale. The unique
// key on (date, meal_type) makes the replace a single atomic upsert.
func (h *MenuHandler) SetMenu(w http.ResponseWriter, r *http.Request) {
	var req models.SetMenuRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MealType == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "meal_type is required")
		return
	}
	if !models.ValidMealType(req.MealType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "meal_type must be lunch or dinner")
		return
	}
	if len(req.Items) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "items[] is required")
		return
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		slog.Error("failed to marshal menu items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save menu")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO menu (id, date, meal_type, items, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date, meal_type) DO UPDATE SET items = excluded.items, created_at = excluded.created_at
	`, uuid.NewString(), today(), req.MealType, string(itemsJSON), time.Now())

	if err != nil {
		slog.Error("failed to save menu", "error", err, "meal_type", req.MealType)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save menu")
		return
	}

	slog.Info("menu updated", "meal_type", req.MealType, "items", len(req.Items))

	middleware.JSONResponse(w, http.StatusOK, models.SetMenuResponse{
		Success: true,
		Message: "Menu updated successfully",
	})
}
