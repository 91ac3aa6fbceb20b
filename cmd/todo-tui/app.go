package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/storage"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui"
)

// session is everything a command needs to work on the task list.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	store   *todo.Store
	closers []io.Closer
}

// openSession loads the config, opens the log file and the storage slot.
func openSession(opts *options) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if opts.ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}

	s := &session{cfg: cfg}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	logger, logCloser, err := logging.Open(logPath, logging.OptionsFromConfig(cfg.Log))
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	s.logger = logger
	s.closers = append(s.closers, logCloser)

	adapter, err := storage.Open(cfg)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	s.closers = append(s.closers, adapter)

	s.store = todo.NewStore(adapter, todo.WithLogger(logger))
	if cfg.UI.SampleTasks && s.store.SeedSamples() {
		logger.Info("seeded sample tasks")
	}
	logger.Info("session started", "backend", cfg.Storage.Backend, "tasks", s.store.Len())
	return s, nil
}

func loadConfig(opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		cfg, err := config.LoadFrom(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Close releases storage and the log file, newest first.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// runApp starts the main TUI application.
func runApp(opts *options, filterName string) error {
	filter, err := todo.ParseFilter(filterName)
	if err != nil {
		return err
	}

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	app := tui.NewApp(s.store, s.cfg, s.logger, filter)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
