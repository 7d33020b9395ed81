package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ============================================================================
// CONFIG TESTS
// ============================================================================

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOVIEWATCH_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CSVPath != "top_100_imdb_movies.csv" {
		t.Errorf("CSVPath = %q", cfg.CSVPath)
	}
	if cfg.ImagePath != "movie_analysis.png" {
		t.Errorf("ImagePath = %q", cfg.ImagePath)
	}
	if cfg.BasicsURL == "" || cfg.RatingsURL == "" {
		t.Error("dataset URLs must default to the IMDb locations")
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "csv_path: custom.csv\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MOVIEWATCH_CONFIG", path)
	t.Setenv("MOVIEWATCH_IMAGE_PATH", "from-env.png")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CSVPath != "custom.csv" {
		t.Errorf("CSVPath = %q, want custom.csv", cfg.CSVPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.ImagePath != "from-env.png" {
		t.Errorf("ImagePath = %q, want env override", cfg.ImagePath)
	}
	// Untouched fields keep their defaults.
	if cfg.RatingsURL == "" {
		t.Error("RatingsURL should fall back to default")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOVIEWATCH_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("malformed config file should be an error")
	}
}
