// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SeedDemo     bool

	// Dashboard knobs. ExpectedDiners is the confirmation-rate
	// denominator; the waste and savings figures are presentation
	// placeholders until real analytics exist, kept out of the code
	// so nobody mistakes them for computed data.
	ExpectedDiners    int
	WasteReductionPct int
	CostSavingsINR    int
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("nourish-hub", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database path (sqlite) or URL (postgres)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", false, "Insert demo data on startup")

	fs.IntVar(&cfg.ExpectedDiners, "expected-diners", 0, "Confirmation rate denominator")
	fs.IntVar(&cfg.WasteReductionPct, "waste-reduction", 0, "Placeholder waste reduction percentage")
	fs.IntVar(&cfg.CostSavingsINR, "cost-savings", 0, "Placeholder weekly cost savings (INR)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3001 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "./nourish_hub.db"
	}

	if !cfg.SeedDemo {
		cfg.SeedDemo = os.Getenv("SEED_DEMO") == "true"
	}

	if cfg.ExpectedDiners == 0 {
		cfg.ExpectedDiners = intEnv("EXPECTED_DINERS", 500)
	}
	if cfg.ExpectedDiners <= 0 {
		return Config{}, errors.New("expected diners must be positive")
	}
	if cfg.WasteReductionPct == 0 {
		cfg.WasteReductionPct = intEnv("WASTE_REDUCTION_PCT", 28)
	}
	if cfg.CostSavingsINR == 0 {
		cfg.CostSavingsINR = intEnv("COST_SAVINGS_INR", 17000)
	}

	return cfg, nil
}

func intEnv(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
