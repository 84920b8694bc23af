package config

import (
	"os"
	"path/filepath"
)

const appDir = "signup"

// DefaultConfigPath returns the settings file location under the user config dir.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appDir, "config.yaml"), nil
}

// DefaultPreferencesPath returns where the theme preference is persisted.
func DefaultPreferencesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appDir, "preferences.json"), nil
}

// DefaultLogPath returns the log file used while the TUI owns the terminal.
func DefaultLogPath() (string, error) {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, appDir, "signup.log"), nil
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appDir, "signup.log"), nil
}
