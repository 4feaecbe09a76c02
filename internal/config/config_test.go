package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFirstRunWritesTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", dir, err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("expected template config.toml in %s: %v", dir, err)
	}

	def := Default()
	if cfg.Risk.RiskFraction != def.Risk.RiskFraction {
		t.Errorf("RiskFraction = %v, want %v", cfg.Risk.RiskFraction, def.Risk.RiskFraction)
	}
	if cfg.Storage.DatabasePath != def.Storage.DatabasePath {
		t.Errorf("DatabasePath = %q, want %q", cfg.Storage.DatabasePath, def.Storage.DatabasePath)
	}
}

func TestLoadTemplateKeepsDefaultDatabasePath(t *testing.T) {
	dir := t.TempDir()

	if err := writeTemplateConfig(dir); err != nil {
		t.Fatalf("writeTemplateConfig: %v", err)
	}

	// The template ships database_path = "". Loading it must fall back
	// to the default path rather than hand the store an empty DSN.
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", dir, err)
	}

	want := filepath.Join(DefaultConfigDir(), "engine.db")
	if cfg.Storage.DatabasePath != want {
		t.Errorf("DatabasePath after loading the template = %q, want %q",
			cfg.Storage.DatabasePath, want)
	}
}

func TestLoadExplicitDatabasePath(t *testing.T) {
	dir := t.TempDir()

	toml := `[storage]
database_path = "/tmp/custom.db"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", dir, err)
	}

	if cfg.Storage.DatabasePath != "/tmp/custom.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.Storage.DatabasePath, "/tmp/custom.db")
	}
}

func TestLoadValidateRejectsBadRiskFraction(t *testing.T) {
	dir := t.TempDir()

	toml := `[risk]
risk_fraction = 0.5
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load accepted risk_fraction = 0.5, want validation error")
	}
}
