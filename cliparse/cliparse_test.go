// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "postgres://cli"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://cli" {
		t.Errorf("CLI should override env: expected postgres://cli, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3344 {
		t.Errorf("expected default port 3344, got %d", cfg.Port)
	}
	if cfg.GenerateHour != 9 {
		t.Errorf("expected default generate hour 9, got %d", cfg.GenerateHour)
	}
	if cfg.TimeZone != "America/New_York" {
		t.Errorf("expected default time zone America/New_York, got %s", cfg.TimeZone)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestParseFlags_InvalidGenerateHour(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	_, err := ParseFlags([]string{"-generate-hour", "24"})
	if err == nil {
		t.Fatal("expected error for out-of-range generate hour")
	}
}

func TestParseFlags_GenerateHourZeroIsValid(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-generate-hour", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GenerateHour != 0 {
		t.Errorf("expected generate hour 0 (midnight), got %d", cfg.GenerateHour)
	}
}
