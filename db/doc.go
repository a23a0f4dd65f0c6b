// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and demo seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is written in the dialect shared by SQLite and PostgreSQL, so it
runs unchanged against either backend.

# Tables

The schema includes:

  - students: simulated student registry (STU### identifiers)
  - meal_preferences: per-student, per-meal, per-date attendance intent
  - menu: today's menu per meal type, items stored as a JSON array
  - weekly_menu_options: manager-authored voting options per weekday
  - weekly_votes: one vote per student per weekday per meal
  - feedback: append-only star-rated feedback

# Uniqueness

Replace-on-resubmission is enforced by unique keys rather than
delete-then-insert:

  - meal_preferences (student_id, meal_type, date)
  - menu (date, meal_type)
  - weekly_menu_options (day, meal_type, option_text)
  - weekly_votes (student_id, day, meal_type)

Writers use INSERT ... ON CONFLICT ... DO UPDATE against these keys, so
a resubmission atomically supersedes the prior row.

# Demo Seeding

SeedDemo populates a fresh database with sample students, today's menus,
a default weekly option set, and randomized preferences for today.
Enabled with the -seed-demo flag.
*/
package db
