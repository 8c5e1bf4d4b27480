// Package config resolves runtime settings from, in increasing
// precedence: the optional YAML config file, a .env file, and the
// process environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds all runtime settings for the CLI.
type Config struct {
	USDAAPIKey  string `yaml:"usda_api_key"`
	USDABaseURL string `yaml:"usda_base_url"`
	DBPath      string `yaml:"db_path"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads the config file at path (missing file is fine), then lets
// .env and environment variables override. An absent USDA key is not an
// error here; it surfaces later as a lookup failure.
func Load(path string) (*Config, error) {
	cfg := &Config{LogLevel: "info"}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file; environment only.
		case err != nil:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	// .env values become environment variables unless already set.
	_ = godotenv.Load()

	cfg.USDAAPIKey = getEnv("USDA_API_KEY", cfg.USDAAPIKey)
	cfg.USDABaseURL = getEnv("USDA_BASE_URL", cfg.USDABaseURL)
	cfg.DBPath = getEnv("CALORIEBUILDER_DB", cfg.DBPath)
	cfg.LogLevel = getEnv("CALORIEBUILDER_LOG_LEVEL", cfg.LogLevel)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
