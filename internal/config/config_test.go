package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	unsetEnv(t, "TABLETOP_DB_PATH", "TABLETOP_LOG_LEVEL", "TABLETOP_SEED", "TABLETOP_NO_UI")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if want := filepath.Join(home, ".tabletop", "boardgames.db"); cfg.DBPath != want {
		t.Fatalf("expected db path %q, got %q", want, cfg.DBPath)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected default log level warn, got %q", cfg.LogLevel)
	}
	if cfg.Seed != 0 || cfg.NoUI {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TABLETOP_DB_PATH", "/tmp/games.db")
	t.Setenv("TABLETOP_LOG_LEVEL", "debug")
	t.Setenv("TABLETOP_SEED", "1234")
	t.Setenv("TABLETOP_NO_UI", "true")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{DBPath: "/tmp/games.db", LogLevel: "debug", Seed: 1234, NoUI: true}
	if *cfg != want {
		t.Fatalf("got %+v, want %+v", *cfg, want)
	}
}

func TestLoadFromDotenvFile(t *testing.T) {
	// godotenv never overrides variables that are already set, so clear them first
	unsetEnv(t, "TABLETOP_DB_PATH", "TABLETOP_LOG_LEVEL", "TABLETOP_SEED", "TABLETOP_NO_UI")

	dotenv := filepath.Join(t.TempDir(), ".env")
	content := "TABLETOP_DB_PATH=/data/club.db\nTABLETOP_SEED=77\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o644); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	cfg, err := LoadFrom(dotenv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/data/club.db" || cfg.Seed != 77 {
		t.Fatalf("expected values from dotenv, got %+v", cfg)
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("TABLETOP_SEED", "not-a-number")

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for invalid seed")
	}
}

// unsetEnv removes keys for the duration of the test and restores them afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
