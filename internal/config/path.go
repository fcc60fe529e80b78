// Package config loads shopping-buddy settings from viper and resolves paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}

// DefaultConfigDir is where config.yaml is looked up.
func DefaultConfigDir() string {
	return ExpandPath("~/.config/buddy")
}

// DefaultDataDir is where the SQLite database and JSON file live by default.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "buddy")
	}
	return ExpandPath("~/.local/share/buddy")
}
