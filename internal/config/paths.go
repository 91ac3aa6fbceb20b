package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataDir returns the path to the data directory.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/todo-tui/
func DataDir() (string, error) {
	// Check XDG_DATA_HOME first
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// StoragePath returns the configured data path, or the default file for the
// backend under DataDir. The memory backend has no path.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Backend == BackendMemory {
		return "", nil
	}
	if c.Storage.Path != "" {
		return expandHome(c.Storage.Path)
	}

	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if c.Storage.Backend == BackendSQLite {
		return filepath.Join(dir, "todos.db"), nil
	}
	ext := strings.ToLower(c.Storage.Format)
	if ext == "" {
		ext = "json"
	}
	if ext == "yml" {
		ext = "yaml"
	}
	return filepath.Join(dir, "todos."+ext), nil
}

// LogPath returns the configured log file, or todo-tui.log under DataDir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return expandHome(c.Log.File)
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+".log"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
