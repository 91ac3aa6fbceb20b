package storage

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hy4ri/todo-tui/internal/todo"
)

const backendSQLite = "sqlite"

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps the collection as JSON under one key of a kv table.
type SQLiteStore struct {
	db   *sql.DB
	path string
	key  string
	now  func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path, key string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, &Error{Op: "open", Backend: backendSQLite, Err: fmt.Errorf("failed to create database directory: %w", err)}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, &Error{Op: "open", Backend: backendSQLite, Err: fmt.Errorf("failed to open database: %w", err)}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, &Error{Op: "open", Backend: backendSQLite, Err: fmt.Errorf("failed to initialize schema: %w", err)}
	}

	return &SQLiteStore{db: db, path: path, key: key, now: time.Now}, nil
}

// Exists reports whether the key has a row.
func (s *SQLiteStore) Exists() (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM kv WHERE key = ?`, s.key).Scan(&n)
	if err != nil {
		return false, &Error{Op: "stat", Backend: backendSQLite, Err: err}
	}
	return n > 0, nil
}

// Load reads and decodes the value under the key. An unreadable value is
// moved to <key>.corrupt-<unix seconds>.
func (s *SQLiteStore) Load() ([]todo.Task, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Op: "load", Backend: backendSQLite, Err: err}
	}

	tasks, err := FormatJSON.Decode([]byte(value))
	if err != nil {
		backup := fmt.Sprintf("%s.corrupt-%d", s.key, s.now().Unix())
		if moveErr := s.moveKey(s.key, backup); moveErr != nil {
			backup = ""
		}
		return nil, &CorruptDataError{
			Backend:  backendSQLite,
			Location: fmt.Sprintf("%s (key %q)", s.path, s.key),
			Backup:   backup,
			Err:      err,
		}
	}
	return tasks, nil
}

// Save upserts the encoded collection in a single statement.
func (s *SQLiteStore) Save(tasks []todo.Task) error {
	data, err := FormatJSON.Encode(tasks)
	if err != nil {
		return &Error{Op: "save", Backend: backendSQLite, Err: fmt.Errorf("failed to encode tasks: %w", err)}
	}

	_, err = s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, string(data), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return &Error{Op: "save", Backend: backendSQLite, Err: err}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) moveKey(from, to string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		SELECT ?, value, ? FROM kv WHERE key = ?
	`, to, s.now().UTC().Format(time.RFC3339), from); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM kv WHERE key = ?`, from); err != nil {
		return err
	}
	return tx.Commit()
}
