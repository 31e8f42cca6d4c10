package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds server settings. Values are resolved in priority order:
// defaults, then quadrant.toml in the working directory, then environment
// variables.
type Config struct {
	Addr             string   `toml:"addr"`
	DBPath           string   `toml:"db_path"`
	CORSOrigins      []string `toml:"cors_origins"`
	UrgentWindowDays int      `toml:"urgent_window_days"`
	LogJSON          bool     `toml:"log_json"`
}

const configFile = "quadrant.toml"

// Load resolves the configuration from defaults, the optional config file and
// the environment.
func Load() (*Config, error) {
	cfg := defaults()

	if _, err := os.Stat(configFile); err == nil {
		if _, err := toml.DecodeFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("loading %s: %w", configFile, err)
		}
	}

	loadFromEnv(cfg)

	if cfg.UrgentWindowDays < 0 {
		return nil, fmt.Errorf("urgent_window_days must not be negative, got %d", cfg.UrgentWindowDays)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Addr:             ":8080",
		DBPath:           defaultDBPath(),
		CORSOrigins:      []string{"*"},
		UrgentWindowDays: 3,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quadrant.db"
	}
	return filepath.Join(home, ".quadrant", "quadrant.db")
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("QUADRANT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("QUADRANT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("QUADRANT_CORS_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.CORSOrigins = origins
	}
	if v := os.Getenv("QUADRANT_URGENT_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.UrgentWindowDays = days
		}
	}
	if v := os.Getenv("QUADRANT_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogJSON = b
		}
	}
}
