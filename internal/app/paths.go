package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "caloriebuilder"
	dbFileName     = "diary.db"
	configFileName = "config.yaml"
)

// DefaultDBPath returns the sqlite path under the user config dir.
func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// DefaultConfigPath returns the optional YAML config file path.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, configFileName), nil
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
