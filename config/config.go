package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KarimM0rgan/What-Movie-Should-I-Watch/imdb"
)

// ============================================================================
// CONFIG — Dataset locations and output paths
// ============================================================================
// Everything has a default; the config file and environment only override
// where the datasets come from, where output lands and how chatty the logs
// are. Analysis thresholds (top 100, top 3 genres) are fixed by design.
// ============================================================================

// Config holds the pipeline's external locations.
type Config struct {
	BasicsURL  string `yaml:"basics_url"`
	RatingsURL string `yaml:"ratings_url"`
	CSVPath    string `yaml:"csv_path"`
	ImagePath  string `yaml:"image_path"`
	LogLevel   string `yaml:"log_level"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		BasicsURL:  imdb.BasicsURL,
		RatingsURL: imdb.RatingsURL,
		CSVPath:    "top_100_imdb_movies.csv",
		ImagePath:  "movie_analysis.png",
		LogLevel:   "info",
	}
}

// Load reads config.yaml (or $MOVIEWATCH_CONFIG) when present and applies
// environment overrides on top of the defaults. A missing file is fine; a
// malformed one is not.
func Load() (Config, error) {
	cfg := Defaults()

	path := "config.yaml"
	if env := os.Getenv("MOVIEWATCH_CONFIG"); env != "" {
		path = env
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	envOverride(&cfg.BasicsURL, "MOVIEWATCH_BASICS_URL")
	envOverride(&cfg.RatingsURL, "MOVIEWATCH_RATINGS_URL")
	envOverride(&cfg.CSVPath, "MOVIEWATCH_CSV_PATH")
	envOverride(&cfg.ImagePath, "MOVIEWATCH_IMAGE_PATH")
	envOverride(&cfg.LogLevel, "MOVIEWATCH_LOG_LEVEL")

	fillDefaults(&cfg)
	return cfg, nil
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// fillDefaults restores any field a config file blanked out.
func fillDefaults(cfg *Config) {
	def := Defaults()
	if cfg.BasicsURL == "" {
		cfg.BasicsURL = def.BasicsURL
	}
	if cfg.RatingsURL == "" {
		cfg.RatingsURL = def.RatingsURL
	}
	if cfg.CSVPath == "" {
		cfg.CSVPath = def.CSVPath
	}
	if cfg.ImagePath == "" {
		cfg.ImagePath = def.ImagePath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}
