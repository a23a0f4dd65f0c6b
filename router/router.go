// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/nourish-hub/cliparse"
	"github.com/danielhkuo/nourish-hub/handlers"
	"github.com/danielhkuo/nourish-hub/middleware"
	"github.com/danielhkuo/nourish-hub/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(db, cfg)
	preferenceHandler := handlers.NewPreferenceHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg)
	metricsHandler := handlers.NewMetricsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Menu (manager writes, students read)
	mux.HandleFunc("GET /api/menu/today", middleware.WithLogging(menuHandler.GetToday))
	mux.HandleFunc("POST /api/menu/set", middleware.WithLogging(menuHandler.SetMenu))

	// Preferences and stats
	mux.HandleFunc("POST /api/preferences", middleware.WithLogging(preferenceHandler.Submit))
	mux.HandleFunc("GET /api/stats/today", middleware.WithLogging(preferenceHandler.GetStatsToday))

	// Weekly voting
	mux.HandleFunc("GET /api/voting/weekly-options", middleware.WithLogging(votingHandler.GetWeeklyOptions))
	mux.HandleFunc("POST /api/voting/weekly-options", middleware.WithLogging(votingHandler.SetWeeklyOptions))
	mux.HandleFunc("POST /api/voting/weekly-vote", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("GET /api/voting/weekly-results", middleware.WithLogging(votingHandler.GetWeeklyResults))

	// Feedback and dashboard metrics
	mux.HandleFunc("POST /api/feedback", middleware.WithLogging(feedbackHandler.Submit))
	mux.HandleFunc("GET /api/feedback/recent", middleware.WithLogging(feedbackHandler.GetRecent))
	mux.HandleFunc("GET /api/metrics", middleware.WithLogging(metricsHandler.GetMetrics))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("nourish-hub API v1"))
	})

	return mux
}
