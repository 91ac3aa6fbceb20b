package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T, key string) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "todos.db"), key)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := newTestSQLite(t, "todos")

	exists, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, tasks)

	require.NoError(t, s.Save(testTasks()))
	require.NoError(t, s.Save(testTasks()))

	exists, err = s.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := s.Load()
	require.NoError(t, err)
	assertSameTasks(t, testTasks(), got)

	var rows int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&rows))
	assert.Equal(t, 1, rows, "upsert must keep one row per key")
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.db")
	a, err := NewSQLiteStore(path, "work")
	require.NoError(t, err)
	defer a.Close()
	b, err := NewSQLiteStore(path, "home")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Save(testTasks()))

	got, err := b.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_CorruptValueMovedToBackupKey(t *testing.T) {
	s := newTestSQLite(t, "todos")
	s.now = func() time.Time { return time.Unix(1700000000, 0) }

	_, err := s.db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES ('todos', 'not json', '')`)
	require.NoError(t, err)

	tasks, err := s.Load()
	assert.Nil(t, tasks)
	ce, ok := IsCorrupt(err)
	require.True(t, ok, "expected CorruptDataError, got %v", err)
	assert.Equal(t, "todos.corrupt-1700000000", ce.Backup)

	var value string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, ce.Backup).Scan(&value))
	assert.Equal(t, "not json", value)

	exists, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}
