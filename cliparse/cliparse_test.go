// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3001 {
		t.Errorf("expected default port 3001, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "./nourish_hub.db" {
		t.Errorf("expected default sqlite path, got %s", cfg.DatabaseURL)
	}
	if cfg.ExpectedDiners != 500 {
		t.Errorf("expected default diners 500, got %d", cfg.ExpectedDiners)
	}
	if cfg.WasteReductionPct != 28 || cfg.CostSavingsINR != 17000 {
		t.Errorf("unexpected placeholder defaults: %d, %d", cfg.WasteReductionPct, cfg.CostSavingsINR)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "sqlite")
	os.Setenv("DATABASE_URL", "/tmp/test.db")
	os.Setenv("EXPECTED_DINERS", "250")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "/tmp/test.db" {
		t.Errorf("expected /tmp/test.db, got %s", cfg.DatabaseURL)
	}
	if cfg.ExpectedDiners != 250 {
		t.Errorf("expected 250 diners, got %d", cfg.ExpectedDiners)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "postgres"})
	if err == nil {
		t.Error("expected error for postgres without URL")
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "mysql"})
	if err == nil {
		t.Error("expected error for unknown database type")
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-port")
	defer os.Clearenv()

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Error("expected error for invalid PORT env variable")
	}
}
