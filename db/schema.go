// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to the dialect shared by SQLite and PostgreSQL so the
// same statements run against either backend.
const schema = `
-- Students
CREATE TABLE IF NOT EXISTS students (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    email TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Meal preferences: one row per student per meal per date
CREATE TABLE IF NOT EXISTS meal_preferences (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL,
    meal_type TEXT NOT NULL CHECK (meal_type IN ('lunch', 'dinner')),
    date TEXT NOT NULL,
    eating_status TEXT NOT NULL CHECK (eating_status IN ('yes', 'limited', 'tiffin', 'skip')),
    portion_size TEXT NOT NULL CHECK (portion_size IN ('small', 'medium', 'large')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (student_id, meal_type, date)
);

CREATE INDEX IF NOT EXISTS idx_meal_preferences_date ON meal_preferences(date);

-- Today's menu: one row per date per meal, items as a JSON array
CREATE TABLE IF NOT EXISTS menu (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    meal_type TEXT NOT NULL CHECK (meal_type IN ('lunch', 'dinner')),
    items TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (date, meal_type)
);

CREATE INDEX IF NOT EXISTS idx_menu_date ON menu(date);

-- Weekly voting options, manager authored; position preserves insertion order
CREATE TABLE IF NOT EXISTS weekly_menu_options (
    id TEXT PRIMARY KEY,
    day TEXT NOT NULL,
    meal_type TEXT NOT NULL CHECK (meal_type IN ('lunch', 'dinner')),
    option_text TEXT NOT NULL,
    position INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (day, meal_type, option_text)
);

CREATE INDEX IF NOT EXISTS idx_weekly_menu_options_day ON weekly_menu_options(day, meal_type);

-- Weekly votes: the unique key makes resubmission a native upsert
CREATE TABLE IF NOT EXISTS weekly_votes (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL,
    day TEXT NOT NULL,
    meal_type TEXT NOT NULL CHECK (meal_type IN ('lunch', 'dinner')),
    option_text TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (student_id, day, meal_type)
);

CREATE INDEX IF NOT EXISTS idx_weekly_votes_day ON weekly_votes(day, meal_type);

-- Feedback, append-only
CREATE TABLE IF NOT EXISTS feedback (
    id TEXT PRIMARY KEY,
    student_id TEXT NOT NULL,
    feedback_text TEXT,
    rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
    meal_type TEXT,
    date TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
CREATE INDEX IF NOT EXISTS idx_feedback_date ON feedback(date);
`
