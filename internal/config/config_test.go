package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
app:
  name: clubkit
  environment: development
  port: 8080
database:
  driver: sqlite
  filename: data/clubkit.db
reminders:
  enabled: true
  hours_before: 24
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Name != "clubkit" || cfg.App.Port != 8080 {
		t.Fatalf("app config not parsed: %+v", cfg.App)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.Filename != "data/clubkit.db" {
		t.Fatalf("database config not parsed: %+v", cfg.Database)
	}
	if !cfg.Reminders.Enabled || cfg.Reminders.HoursBefore != 24 {
		t.Fatalf("reminders config not parsed: %+v", cfg.Reminders)
	}
}

func TestLoadRejectsMissingPort(t *testing.T) {
	path := writeConfig(t, `
app:
  name: clubkit
database:
  driver: sqlite
  filename: data/clubkit.db
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected missing port to fail validation")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
app:
  name: clubkit
  port: 8080
database:
  driver: postgres
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected unknown driver to fail validation")
	}
}

func TestValidateEmailRequiresCredentials(t *testing.T) {
	cfg := &Config{}
	cfg.App.Name = "clubkit"
	cfg.App.Port = 8080
	cfg.Database.Driver = "sqlite"
	cfg.Database.Filename = "club.db"
	cfg.Email.Enabled = true
	cfg.Email.Region = "us-east-1"
	cfg.Email.Sender = "no-reply@example.com"

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected enabled email without credentials to fail")
	}

	cfg.Email.AccessKeyID = "key"
	cfg.Email.SecretAccessKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid email config, got %v", err)
	}
}
