package storage

import (
	"fmt"

	"github.com/hy4ri/todo-tui/internal/config"
)

// Open creates the adapter selected by cfg.
func Open(cfg *config.Config) (Adapter, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile, config.BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	path, err := cfg.StoragePath()
	if err != nil {
		return nil, &Error{Op: "open", Backend: cfg.Storage.Backend, Err: err}
	}

	if cfg.Storage.Backend == config.BackendSQLite {
		store, err := NewSQLiteStore(path, cfg.Storage.Key)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	format, err := ParseFormat(cfg.Storage.Format)
	if err != nil {
		return nil, err
	}
	store, err := NewFileStore(path, format)
	if err != nil {
		return nil, err
	}
	return store, nil
}
