// Package storage persists the task collection in a single key-value slot:
// a data file, a row in a SQLite table, or process memory.
package storage

import (
	"errors"
	"fmt"

	"github.com/hy4ri/todo-tui/internal/todo"
)

// ErrUnavailable matches every error returned when the slot cannot be read
// or written.
var ErrUnavailable = errors.New("storage unavailable")

// Adapter reads and writes the whole collection.
type Adapter interface {
	// Load returns the stored tasks, or nil when nothing was ever saved.
	Load() ([]todo.Task, error)
	// Save replaces the stored tasks.
	Save(tasks []todo.Task) error
	// Exists reports whether the slot has ever been written.
	Exists() (bool, error)
	Close() error
}

// Error describes a failed storage operation.
type Error struct {
	Op      string // "load", "save", "open"
	Backend string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s storage: %s failed: %v", e.Backend, e.Op, e.Err)
}

// Unwrap lets errors.Is match both ErrUnavailable and the cause.
func (e *Error) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// IsStorageError checks if an error is a storage Error and returns it.
func IsStorageError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}

// CorruptDataError is returned by Load when the slot holds data that does
// not decode into a valid task collection.
type CorruptDataError struct {
	Backend  string
	Location string
	// Backup is where the unreadable data was moved, empty if it could not be.
	Backup string
	Err    error
}

// Error implements the error interface.
func (e *CorruptDataError) Error() string {
	msg := fmt.Sprintf("%s storage: corrupt data in %s: %v", e.Backend, e.Location, e.Err)
	if e.Backup != "" {
		msg += fmt.Sprintf(" (saved as %s)", e.Backup)
	}
	return msg
}

// Unwrap returns the decode or validation error.
func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// Corrupt marks the error as unreadable data rather than an unreachable
// store.
func (e *CorruptDataError) Corrupt() bool {
	return true
}

// IsCorrupt checks if an error is a CorruptDataError and returns it.
func IsCorrupt(err error) (*CorruptDataError, bool) {
	var ce *CorruptDataError
	ok := errors.As(err, &ce)
	return ce, ok
}
