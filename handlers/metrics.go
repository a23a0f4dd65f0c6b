// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/middleware"
	"github.com/danielhkuo/nourish-hub/models"
)

type MetricsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMetricsHandler(db *sql.DB, cfg cliparse.Config) *MetricsHandler {
	return &MetricsHandler{db: db, cfg: cfg}
}

// GetMetrics handles GET /api/metrics
// Combines three aggregate reads into the fixed four-tile dashboard
// shape: today's non-skip preference count, the count from seven days
// prior for trend comparison, and the 7-day average rating with its
// sample count. The waste and savings tiles are configured estimates,
// not computed data.
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	todayCount, err := h.nonSkipCount(today())
	if err != nil {
		slog.Error("failed to count today's confirmations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	lastWeekCount, err := h.nonSkipCount(daysBack(7))
	if err != nil {
		slog.Error("failed to count last week's confirmations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var avgRating float64
	var sampleCount int
	err = h.db.QueryRow(`
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM feedback
		WHERE date >= $1
	`, daysBack(7)).Scan(&avgRating, &sampleCount)
	if err != nil {
		slog.Error("failed to compute average rating", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	confirmationRate := int(math.Round(float64(todayCount) / float64(h.cfg.ExpectedDiners) * 100))

	confirmationChange := "↑ improving week-on-week"
	confirmationTrend := "up"
	if todayCount < lastWeekCount {
		confirmationChange = "↓ needs improvement"
		confirmationTrend = "down"
	}

	satisfactionTrend := "up"
	if sampleCount > 0 && avgRating < 3 {
		satisfactionTrend = "down"
	}

	middleware.JSONResponse(w, http.StatusOK, models.MetricsResponse{
		WasteReduction: models.MetricCard{
			Value:  fmt.Sprintf("%d%%", h.cfg.WasteReductionPct),
			Change: "configured estimate",
			Trend:  "down",
		},
		CostSavings: models.MetricCard{
			Value:  fmt.Sprintf("₹%dk", h.cfg.CostSavingsINR/1000),
			Change: "configured estimate",
			Trend:  "up",
		},
		ConfirmationRate: models.MetricCard{
			Value:  fmt.Sprintf("%d%%", confirmationRate),
			Change: confirmationChange,
			Trend:  confirmationTrend,
		},
		AvgSatisfaction: models.MetricCard{
			Value:  fmt.Sprintf("%.1f/5", avgRating),
			Change: fmt.Sprintf("Based on %d responses", sampleCount),
			Trend:  satisfactionTrend,
		},
	})
}

// nonSkipCount counts preferences for a date where the student actually
// intends to eat.
func (h *MetricsHandler) nonSkipCount(date string) (int, error) {
	var count int
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM meal_preferences
		WHERE date = $1 AND eating_status != 'skip'
	`, date).Scan(&count)
	return count, err
}
