// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Nourish Hub API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - MenuHandler: today's menu (manager write, student read)
  - PreferenceHandler: attendance intent submission and daily stats
  - VotingHandler: weekly option configuration, votes, and tallies
  - FeedbackHandler: star-rated feedback and the recent feed
  - MetricsHandler: the manager dashboard tiles

Handlers are created via constructor functions that accept *sql.DB and Config:

	menuHandler := handlers.NewMenuHandler(db, cfg)

# Replace-on-Resubmission

The write paths share one idiom: a unique key in the schema plus
INSERT ... ON CONFLICT ... DO UPDATE. Submitting a preference, a vote,
or a menu for an existing key atomically supersedes the prior row - no
delete-then-insert window, no duplicate rows under concurrency.

	POST /api/preferences          one row per (student, meal, date)
	POST /api/voting/weekly-vote   one row per (student, day, meal)
	POST /api/menu/set             one row per (date, meal)

The weekly option set is the exception: it is replaced wholesale
(delete-all plus reinsert) inside a single transaction.

# Identity

There is no auth. Handlers validate the STU### identifier format and
call EnsureStudent before any write that references student_id, so every
referencing row has a students row behind it.

# Aggregations

Read paths are single GROUP BY queries shaped in Go:

	GET /api/stats/today            (meal, status, portion) buckets
	GET /api/voting/weekly-results  "{day}_{meal}" → option → count
	GET /api/metrics                dashboard tiles
	GET /api/feedback/recent        newest first with time-ago labels
*/
package handlers
