// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Nourish Hub API server.

Nourish Hub is a campus dining coordination service: students record
daily meal attendance intent and portion size, vote on weekly menu
options, and submit star-rated feedback; the mess manager sets menus,
configures the weekly vote, and watches aggregated statistics.

# Starting the Server

With no configuration at all the server listens on port 3001 and opens
an embedded SQLite database at ./nourish_hub.db:

	go run main.go

Useful flags:

	go run main.go -p 3001 -seed-demo
	go run main.go -t postgres -d "postgres://..."

# Configuration

Optional settings (flags fall back to env variables, see cliparse):

  - PORT (-p): server port (default: 3001)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SEED_DEMO (-seed-demo): insert demo data on startup
  - EXPECTED_DINERS, WASTE_REDUCTION_PCT, COST_SAVINGS_INR: dashboard knobs

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (menu, preferences, voting, feedback, metrics)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types and enumerated domains
  - identity: student identifier validation
  - db: schema creation and demo seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
