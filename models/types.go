// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"
)

// Meal type constants
const (
	MealLunch  = "lunch"
	MealDinner = "dinner"
)

// Eating status constants
const (
	EatingYes     = "yes"     // full meal
	EatingLimited = "limited" // selected items only
	EatingTiffin  = "tiffin"  // take-away
	EatingSkip    = "skip"
)

// Portion size constants
const (
	PortionSmall  = "small"
	PortionMedium = "medium"
	PortionLarge  = "large"
)

// MealTypeGeneral tags feedback that is not tied to a specific meal.
const MealTypeGeneral = "general"

// Weekdays lists the voting day keys in calendar order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func ValidMealType(s string) bool {
	return s == MealLunch || s == MealDinner
}

func ValidEatingStatus(s string) bool {
	switch s {
	case EatingYes, EatingLimited, EatingTiffin, EatingSkip:
		return true
	}
	return false
}

func ValidPortionSize(s string) bool {
	switch s {
	case PortionSmall, PortionMedium, PortionLarge:
		return true
	}
	return false
}

func ValidDay(s string) bool {
	for _, d := range Weekdays {
		if s == d {
			return true
		}
	}
	return false
}

// Request types

type SetMenuRequest struct {
	MealType string   `json:"meal_type"`
	Items    []string `json:"items"`
}

type SubmitPreferenceRequest struct {
	StudentID    string `json:"student_id"`
	MealType     string `json:"meal_type"`
	EatingStatus string `json:"eating_status"`
	PortionSize  string `json:"portion_size"`
}

// DayOptions holds the option lists for a single voting day.
type DayOptions struct {
	Lunch  []string `json:"lunch"`
	Dinner []string `json:"dinner"`
}

// WeeklyOptionsMap maps a weekday name to its lunch and dinner options.
// Used both as the GET response and the POST (replace-all) request body.
type WeeklyOptionsMap map[string]DayOptions

type SubmitVoteRequest struct {
	StudentID  string `json:"student_id"`
	Day        string `json:"day"`
	MealType   string `json:"meal_type"`
	OptionText string `json:"option_text"`
}

// Rating is kept raw so the handler can accept both a JSON number and a
// numeric string ("4") while rejecting everything else before persistence.
type SubmitFeedbackRequest struct {
	StudentID    string          `json:"student_id"`
	FeedbackText string          `json:"feedback_text"`
	Rating       json.RawMessage `json:"rating"`
	MealType     string          `json:"meal_type"`
}

// Response types

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type SetMenuResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MenuEntry is the per-meal value in the GET /api/menu/today mapping.
type MenuEntry struct {
	Items []string `json:"items"`
	Date  string   `json:"date"`
}

type SubmitPreferenceResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type SetWeeklyOptionsResponse struct {
	Success bool `json:"success"`
}

type SubmitVoteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// WeeklyResults maps "{day}_{meal_type}" to per-option vote counts.
type WeeklyResults map[string]map[string]int

type SubmitFeedbackResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// FeedbackErrorResponse is the rejection shape for POST /api/feedback.
type FeedbackErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type FeedbackEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating"`
	Time     string `json:"time"`
}

// PortionCounts tallies portion sizes for students who are eating.
type PortionCounts struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

// MealStats aggregates one meal type's preferences for a date. Skipped
// entries count toward Total and Skip but never toward Portions.
type MealStats struct {
	Total    int           `json:"total"`
	Yes      int           `json:"yes"`
	Limited  int           `json:"limited"`
	Tiffin   int           `json:"tiffin"`
	Skip     int           `json:"skip"`
	Portions PortionCounts `json:"portions"`
}

type TodayStats struct {
	Lunch  MealStats `json:"lunch"`
	Dinner MealStats `json:"dinner"`
}

// MetricCard is one tile of the manager dashboard.
type MetricCard struct {
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

type MetricsResponse struct {
	WasteReduction   MetricCard `json:"wasteReduction"`
	CostSavings      MetricCard `json:"costSavings"`
	ConfirmationRate MetricCard `json:"confirmationRate"`
	AvgSatisfaction  MetricCard `json:"avgSatisfaction"`
}

// Domain types

type Student struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type MealPreference struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	MealType     string    `json:"meal_type"`
	Date         string    `json:"date"`
	EatingStatus string    `json:"eating_status"`
	PortionSize  string    `json:"portion_size"`
	CreatedAt    time.Time `json:"created_at"`
}

type WeeklyMenuOption struct {
	ID         string `json:"id"`
	Day        string `json:"day"`
	MealType   string `json:"meal_type"`
	OptionText string `json:"option_text"`
	Position   int    `json:"position"`
}

type WeeklyVote struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	Day        string    `json:"day"`
	MealType   string    `json:"meal_type"`
	OptionText string    `json:"option_text"`
	CreatedAt  time.Time `json:"created_at"`
}

type Feedback struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	FeedbackText string    `json:"feedback_text"`
	Rating       int       `json:"rating"`
	MealType     string    `json:"meal_type"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
