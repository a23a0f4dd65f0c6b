// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - SeedDemo: insert demo data on startup
  - ExpectedDiners: confirmation-rate denominator (default: 500)
  - WasteReductionPct, CostSavingsINR: dashboard placeholder figures

# CLI Flags

	-p               Server port
	-d               Database path or URL
	-t               Database type
	-seed-demo       Insert demo data
	-expected-diners Confirmation rate denominator
	-waste-reduction Placeholder waste reduction percentage
	-cost-savings    Placeholder weekly cost savings (INR)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	SEED_DEMO           → -seed-demo ("true")
	EXPECTED_DINERS     → -expected-diners
	WASTE_REDUCTION_PCT → -waste-reduction
	COST_SAVINGS_INR    → -cost-savings

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded by main before parsing.

# Defaults

SQLite needs no configuration at all: with no flags and no environment,
the server listens on 3001 and opens ./nourish_hub.db. PostgreSQL
requires an explicit DATABASE_URL.
*/
package cliparse
