package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/hy4ri/todo-tui/internal/todo"
)

const backendFile = "file"

// FileStore keeps the collection in one data file. A lock file next to it
// serializes processes sharing the same path.
type FileStore struct {
	path   string
	format Format
	flk    *flock.Flock
	now    func() time.Time
}

// NewFileStore creates a file store at path, creating its directory.
func NewFileStore(path string, format Format) (*FileStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, &Error{Op: "open", Backend: backendFile, Err: fmt.Errorf("failed to create directory %s: %w", dir, err)}
		}
	}

	return &FileStore{
		path:   path,
		format: format,
		flk:    flock.New(path + ".lock"),
		now:    time.Now,
	}, nil
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the data file exists.
func (s *FileStore) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, &Error{Op: "stat", Backend: backendFile, Err: err}
}

// Load reads the data file. Unreadable content is renamed to
// <path>.corrupt-<unix seconds> so a later Save cannot overwrite it.
func (s *FileStore) Load() ([]todo.Task, error) {
	if err := s.flk.Lock(); err != nil {
		return nil, &Error{Op: "load", Backend: backendFile, Err: fmt.Errorf("failed to lock %s: %w", s.path, err)}
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &Error{Op: "load", Backend: backendFile, Err: err}
	}

	tasks, err := s.format.Decode(data)
	if err != nil {
		backup := fmt.Sprintf("%s.corrupt-%d", s.path, s.now().Unix())
		if renameErr := os.Rename(s.path, backup); renameErr != nil {
			backup = ""
		}
		return nil, &CorruptDataError{Backend: backendFile, Location: s.path, Backup: backup, Err: err}
	}
	return tasks, nil
}

// Save writes tasks to a temp file in the same directory, syncs it and
// renames it over the data file.
func (s *FileStore) Save(tasks []todo.Task) error {
	data, err := s.format.Encode(tasks)
	if err != nil {
		return &Error{Op: "save", Backend: backendFile, Err: fmt.Errorf("failed to encode tasks: %w", err)}
	}

	if err := s.flk.Lock(); err != nil {
		return &Error{Op: "save", Backend: backendFile, Err: fmt.Errorf("failed to lock %s: %w", s.path, err)}
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := writeFileAtomic(s.path, data); err != nil {
		return &Error{Op: "save", Backend: backendFile, Err: err}
	}
	return nil
}

// Close releases the lock file handle.
func (s *FileStore) Close() error {
	return s.flk.Close()
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
