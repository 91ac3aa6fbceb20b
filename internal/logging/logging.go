// Package logging builds the application logger with charmbracelet/log.
//
// The terminal belongs to the TUI while it runs, so log output goes to a
// file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hy4ri/todo-tui/internal/config"
)

// Options holds logger settings.
type Options struct {
	Level     log.Level
	Formatter log.Formatter
	Prefix    string
}

// OptionsFromConfig converts the log section of the config file.
func OptionsFromConfig(cfg config.LogConfig) Options {
	return Options{
		Level:     ParseLevel(cfg.Level),
		Formatter: ParseFormatter(cfg.Format),
		Prefix:    config.AppName,
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
}

// Open creates a logger appending to the file at path. The returned closer
// closes the file.
func Open(path string, opts Options) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, opts), f, nil
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) log.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ParseFormatter parses a formatter name, defaulting to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
