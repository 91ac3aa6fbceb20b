package storage

import (
	"sync"

	"github.com/hy4ri/todo-tui/internal/todo"
)

const backendMemory = "memory"

// MemoryStore keeps the encoded collection in process memory. Values pass
// through the JSON codec so they behave like persisted data.
type MemoryStore struct {
	mu      sync.Mutex
	data    []byte
	written bool
	saveErr error
}

// NewMemoryStore returns an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith returns a memory store holding raw, as if it had been
// written by an earlier run.
func NewMemoryStoreWith(raw []byte) *MemoryStore {
	return &MemoryStore{data: append([]byte(nil), raw...), written: true}
}

// FailSaves makes every following Save return err; nil restores saving.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Exists reports whether anything was written.
func (s *MemoryStore) Exists() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written, nil
}

// Load decodes the held data.
func (s *MemoryStore) Load() ([]todo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.written {
		return nil, nil
	}
	tasks, err := FormatJSON.Decode(s.data)
	if err != nil {
		return nil, &CorruptDataError{Backend: backendMemory, Location: "memory", Err: err}
	}
	return tasks, nil
}

// Save encodes and keeps tasks.
func (s *MemoryStore) Save(tasks []todo.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return &Error{Op: "save", Backend: backendMemory, Err: s.saveErr}
	}
	data, err := FormatJSON.Encode(tasks)
	if err != nil {
		return &Error{Op: "save", Backend: backendMemory, Err: err}
	}
	s.data = data
	s.written = true
	return nil
}

// Raw returns a copy of the held bytes.
func (s *MemoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
