package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/storage"
	"github.com/hy4ri/todo-tui/internal/todo"
)

func fixedClock(t *testing.T) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.Local) }
	t.Cleanup(func() { timeNow = orig })
}

func TestAddTask(t *testing.T) {
	fixedClock(t)
	store := todo.NewStore(storage.NewMemoryStore())

	task, err := addTask(store, "  Buy milk ", todo.PriorityHigh, todo.CategoryShopping, "tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Text)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2025-03-02", task.DueDate.String())

	task, err = addTask(store, "Stretch", todo.PriorityLow, todo.CategoryHealth, "")
	require.NoError(t, err)
	assert.Nil(t, task.DueDate)

	_, err = addTask(store, "Bad", todo.PriorityLow, todo.CategoryHealth, "next week")
	assert.Error(t, err)

	_, err = addTask(store, "   ", todo.PriorityLow, todo.CategoryHealth, "")
	assert.Error(t, err)

	assert.Equal(t, 2, store.Len())
}

func TestPrintList(t *testing.T) {
	due := todo.Date{Year: 2025, Month: time.March, Day: 1}
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Save([]todo.Task{
		{ID: 1, Text: "Buy milk", Priority: todo.PriorityHigh, Category: todo.CategoryShopping, DueDate: &due},
		{ID: 2, Text: "Call dentist", Completed: true, Priority: todo.PriorityMedium, Category: todo.CategoryHealth},
	}))
	store := todo.NewStore(mem)

	var out bytes.Buffer
	printList(&out, store, todo.FilterAll, "Jan 2, 2006")
	assert.Equal(t, "[ ] Buy milk  (High, Shopping, due Mar 1, 2025)\n"+
		"[x] Call dentist  (Medium, Health)\n"+
		"Total: 2 tasks\n"+
		"Completed: 1\n", out.String())

	out.Reset()
	printList(&out, store, todo.FilterActive, "Jan 2, 2006")
	assert.NotContains(t, out.String(), "Call dentist")
	assert.Contains(t, out.String(), "Total: 2 tasks")
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo-tui", "config.yaml")
	var out bytes.Buffer

	require.NoError(t, writeTemplate(strings.NewReader(""), &out, path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template, string(data))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)

	// Declining the prompt keeps the existing file
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  vim_mode: false\n"), 0600))
	out.Reset()
	require.NoError(t, writeTemplate(strings.NewReader("n\n"), &out, path, false))
	assert.Contains(t, out.String(), "Aborted.")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vim_mode: false")

	require.NoError(t, writeTemplate(strings.NewReader("y\n"), &out, path, false))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template, string(data))
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "ephemeral"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.Flags().Lookup("filter"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"init", "list", "add"})
}
