package ui

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hy4ri/todo-tui/internal/storage"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func newTestRenderer(t *testing.T, tasks ...todo.Task) (*Renderer, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	if len(tasks) > 0 {
		if err := mem.Save(tasks); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	s := state.New(todo.NewStore(mem), nil, nil)
	s.Now = func() time.Time { return time.Date(2025, time.March, 1, 10, 0, 0, 0, time.Local) }
	s.Width = 80
	s.Height = 24
	s.Visible = todo.Visible(s.Store.Tasks(), s.Filter)
	return NewRenderer(s), mem
}

func threeTasks() []todo.Task {
	return []todo.Task{
		{ID: 1, Text: "Buy milk", Priority: todo.PriorityHigh, Category: todo.CategoryShopping},
		{ID: 2, Text: "Call dentist", Completed: true, Priority: todo.PriorityMedium, Category: todo.CategoryHealth},
		{ID: 3, Text: "Ship release", Priority: todo.PriorityLow, Category: todo.CategoryWork},
	}
}

func TestViewBeforeSize(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.Width = 0
	if got := r.View(); got != "Loading..." {
		t.Errorf("View() = %q", got)
	}
}

func TestMainViewFillsScreen(t *testing.T) {
	r, _ := newTestRenderer(t, threeTasks()...)

	for _, hints := range []bool{true, false} {
		r.ShowHints = hints
		lines := strings.Split(r.View(), "\n")
		if len(lines) != r.Height {
			t.Errorf("hints %v: %d lines, want %d", hints, len(lines), r.Height)
		}
	}
}

func TestMainViewRowsStartAtListTop(t *testing.T) {
	r, _ := newTestRenderer(t, threeTasks()...)

	lines := strings.Split(stripANSI(r.View()), "\n")
	for i, want := range []string{"Buy milk", "Call dentist", "Ship release"} {
		if !strings.Contains(lines[state.ListTop+i], want) {
			t.Errorf("line %d = %q, want %q", state.ListTop+i, lines[state.ListTop+i], want)
		}
	}
}

func TestTabBarShowsCounts(t *testing.T) {
	r, _ := newTestRenderer(t, threeTasks()...)

	bar := stripANSI(r.renderTabBar())
	for _, want := range []string{"All (3)", "Active (2)", "Completed (1)"} {
		if !strings.Contains(bar, want) {
			t.Errorf("tab bar %q missing %q", bar, want)
		}
	}
}

func TestStatusBarSummary(t *testing.T) {
	tests := []struct {
		name  string
		tasks []todo.Task
		want  []string
	}{
		{"empty", nil, []string{"Total: 0 tasks", "Completed: 0"}},
		{"single", threeTasks()[:1], []string{"Total: 1 task", "Completed: 0"}},
		{"mixed", threeTasks(), []string{"Total: 3 tasks", "Completed: 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRenderer(t, tt.tasks...)
			bar := stripANSI(r.renderStatusBar())
			for _, want := range tt.want {
				if !strings.Contains(bar, want) {
					t.Errorf("status bar %q missing %q", bar, want)
				}
			}
		})
	}
}

func TestStatusBarMessages(t *testing.T) {
	r, mem := newTestRenderer(t, threeTasks()...)

	r.StatusMsg = "Task added"
	if bar := stripANSI(r.renderStatusBar()); !strings.Contains(bar, "Task added") {
		t.Errorf("status bar %q missing message", bar)
	}

	mem.FailSaves(errors.New("disk full"))
	r.Store.ToggleCompleted(1)
	if bar := stripANSI(r.renderStatusBar()); !strings.Contains(bar, "Storage:") {
		t.Errorf("status bar %q missing storage error", bar)
	}

	r.Err = errors.New("boom")
	if bar := stripANSI(r.renderStatusBar()); !strings.Contains(bar, "Error: boom") {
		t.Errorf("status bar %q missing error", bar)
	}
}

func TestEmptyMessages(t *testing.T) {
	tests := []struct {
		filter todo.Filter
		total  int
		want   string
	}{
		{todo.FilterAll, 0, "No tasks yet. Press a to add one."},
		{todo.FilterActive, 0, "No tasks yet. Press a to add one."},
		{todo.FilterActive, 2, "Nothing left to do."},
		{todo.FilterCompleted, 2, "No completed tasks."},
	}
	for _, tt := range tests {
		if got := emptyMessage(tt.filter, tt.total); got != tt.want {
			t.Errorf("emptyMessage(%v, %d) = %q, want %q", tt.filter, tt.total, got, tt.want)
		}
	}
}

func TestEmptyListRendersMessage(t *testing.T) {
	r, _ := newTestRenderer(t)

	if out := stripANSI(r.View()); !strings.Contains(out, "No tasks yet") {
		t.Errorf("empty view missing hint:\n%s", out)
	}
}

func TestFormView(t *testing.T) {
	r, _ := newTestRenderer(t, threeTasks()...)

	r.TaskForm = state.NewTaskForm()
	r.CurrentView = state.ViewTaskForm
	out := stripANSI(r.View())
	for _, want := range []string{"Add Task", "High", "Medium", "Low", "Work", "Personal", "Shopping", "Health"} {
		if !strings.Contains(out, want) {
			t.Errorf("add form missing %q", want)
		}
	}

	r.TaskForm = state.NewEditTaskForm(threeTasks()[0])
	out = stripANSI(r.View())
	if !strings.Contains(out, "Edit Task") || !strings.Contains(out, "Buy milk") {
		t.Errorf("edit form missing title or text:\n%s", out)
	}

	r.TaskForm.Err = "due date must be YYYY-MM-DD, today or tomorrow"
	if out := stripANSI(r.View()); !strings.Contains(out, "due date must be") {
		t.Error("form error not shown")
	}
}

func TestOneLine(t *testing.T) {
	if got := oneLine("a\n  b\tc", 20); got != "a b c" {
		t.Errorf("oneLine() = %q", got)
	}
	if got := oneLine("abcdefghij", 5); len([]rune(got)) > 5 {
		t.Errorf("oneLine() = %q, wider than 5", got)
	}
}
