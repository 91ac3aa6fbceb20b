// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName names the config and data directories.
const AppName = "todo-tui"

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where tasks are persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	// Path is the data file (file backend) or database (sqlite backend).
	// Empty means a default under DataDir.
	Path   string `yaml:"path,omitempty"`
	Format string `yaml:"format,omitempty"` // "json", "yaml" or "toml"
	Key    string `yaml:"key,omitempty"`    // sqlite slot key
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode       bool   `yaml:"vim_mode"`
	DateFormat    string `yaml:"date_format,omitempty"`
	SampleTasks   bool   `yaml:"sample_tasks"`
	Notifications bool   `yaml:"notifications"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // "text", "logfmt" or "json"
	File   string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Format:  "json",
			Key:     "todos",
		},
		UI: UIConfig{
			VimMode:     true,
			DateFormat:  "Jan 2, 2006",
			SampleTasks: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports settings the application cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.backend: unknown backend %q (want file, sqlite or memory)", c.Storage.Backend))
	}

	switch strings.ToLower(c.Storage.Format) {
	case "", "json", "yaml", "yml", "toml":
	default:
		errs = append(errs, fmt.Errorf("storage.format: unknown format %q (want json, yaml or toml)", c.Storage.Format))
	}

	if c.Storage.Backend == BackendSQLite && strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, errors.New("storage.key: must not be empty for the sqlite backend"))
	}

	return errors.Join(errs...)
}

// ConfigDir returns the path to the configuration directory.
// Uses XDG_CONFIG_HOME or defaults to ~/.config/todo-tui/.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(configHome, AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path. Missing keys keep their
// defaults; a missing file yields DefaultConfig.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Template is the commented config file written by `todo-tui init`.
const Template = `# todo-tui configuration
# Location: ~/.config/todo-tui/config.yaml

storage:
  # Where tasks live: file, sqlite or memory (nothing persisted)
  backend: file
  # Data file or database path. Empty uses ~/.local/share/todo-tui/
  path: ""
  # File backend encoding: json, yaml or toml
  format: json
  # Key holding the task list in the sqlite backend
  key: todos

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Go time layout for due dates
  date_format: "Jan 2, 2006"
  # Insert three example tasks the first time the app starts
  sample_tasks: true
  # Desktop notifications for tasks due soon
  notifications: false

log:
  # debug, info, warn or error
  level: info
  # text, logfmt or json
  format: text
  # Empty uses ~/.local/share/todo-tui/todo-tui.log
  file: ""
`

// WriteTemplate writes Template to path, creating its directory.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(Template), 0600)
}
