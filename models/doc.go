// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SetMenuRequest: meal_type, items
  - SubmitPreferenceRequest: student_id, meal_type, eating_status, portion_size
  - WeeklyOptionsMap: day → {lunch, dinner} option lists (replace-all body)
  - SubmitVoteRequest: student_id, day, meal_type, option_text
  - SubmitFeedbackRequest: student_id, feedback_text, rating, meal_type

# Response Types

Types for JSON responses:

  - SetMenuResponse: success, message
  - MenuEntry: items, date (per meal in the today-menu mapping)
  - SubmitPreferenceResponse / SubmitVoteResponse / SubmitFeedbackResponse: success, id
  - WeeklyResults: "{day}_{meal_type}" → option → count
  - TodayStats / MealStats / PortionCounts: grouped preference tallies
  - FeedbackEntry: id, name, feedback, rating, time
  - MetricsResponse / MetricCard: dashboard tiles
  - ErrorResponse: error, message
  - FeedbackErrorResponse: success=false, error (feedback rejections only)

# Constants

Meal types:

	MealLunch  = "lunch"
	MealDinner = "dinner"

Eating statuses:

	EatingYes     = "yes"
	EatingLimited = "limited"
	EatingTiffin  = "tiffin"
	EatingSkip    = "skip"

Portion sizes:

	PortionSmall  = "small"
	PortionMedium = "medium"
	PortionLarge  = "large"

Weekdays holds the seven day keys used by the voting service. The Valid*
helpers check a value against its enumerated domain; handlers reject
anything outside it before touching the store.
*/
package models
