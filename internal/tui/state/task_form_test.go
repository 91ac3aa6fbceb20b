package state

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/todo"
)

func sendKey(f *TaskForm, key string) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	}
	f.Update(msg)
}

func TestTaskForm_Defaults(t *testing.T) {
	f := NewTaskForm()

	if f.Mode != FormModeCreate || f.IsEdit() {
		t.Errorf("Mode = %q, want create", f.Mode)
	}
	if f.Priority != todo.PriorityMedium || f.Category != todo.CategoryPersonal {
		t.Errorf("defaults = %s/%s, want medium/personal", f.Priority, f.Category)
	}
	if !f.Text.Focused() {
		t.Error("text field should be focused")
	}
	if f.IsValid() {
		t.Error("empty form should be invalid")
	}
}

func TestTaskForm_FocusCycle(t *testing.T) {
	f := NewTaskForm()

	sendKey(f, "tab")
	if f.FocusIndex != FormFieldPriority || f.Text.Focused() {
		t.Errorf("after tab focus = %d", f.FocusIndex)
	}
	sendKey(f, "tab")
	sendKey(f, "tab")
	if f.FocusIndex != FormFieldDue || !f.Due.Focused() {
		t.Errorf("expected due focused, got %d", f.FocusIndex)
	}
	sendKey(f, "tab")
	sendKey(f, "tab")
	if f.FocusIndex != FormFieldText {
		t.Errorf("focus should wrap to text, got %d", f.FocusIndex)
	}
	sendKey(f, "shift+tab")
	if f.FocusIndex != FormFieldSubmit {
		t.Errorf("shift+tab should wrap to submit, got %d", f.FocusIndex)
	}
}

func TestTaskForm_PriorityAndCategoryFields(t *testing.T) {
	f := NewTaskForm()
	f.Focus(FormFieldPriority)

	sendKey(f, "1")
	if f.Priority != todo.PriorityHigh {
		t.Errorf("Priority = %s, want high", f.Priority)
	}
	sendKey(f, "left")
	if f.Priority != todo.PriorityLow {
		t.Errorf("left from high should wrap to low, got %s", f.Priority)
	}

	f.Focus(FormFieldCategory)
	sendKey(f, "4")
	if f.Category != todo.CategoryHealth {
		t.Errorf("Category = %s, want health", f.Category)
	}
	sendKey(f, "right")
	if f.Category != todo.CategoryWork {
		t.Errorf("right from health should wrap to work, got %s", f.Category)
	}

	// Typing in a selector field must not leak into the text input.
	if f.Text.Value() != "" {
		t.Errorf("text = %q", f.Text.Value())
	}
}

func TestTaskForm_TypingFillsFocusedInput(t *testing.T) {
	f := NewTaskForm()
	for _, r := range "Buy milk" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if f.Text.Value() != "Buy milk" {
		t.Errorf("text = %q", f.Text.Value())
	}
	if f.Due.Value() != "" {
		t.Errorf("due = %q", f.Due.Value())
	}
}

func TestNewEditTaskForm(t *testing.T) {
	due := todo.Date{Year: 2025, Month: time.January, Day: 1}
	task := todo.Task{ID: 9, Text: "Buy milk", Priority: todo.PriorityHigh, Category: todo.CategoryShopping, DueDate: &due}

	f := NewEditTaskForm(task)
	if !f.IsEdit() || f.TaskID != 9 {
		t.Errorf("mode/id = %s/%d", f.Mode, f.TaskID)
	}
	if f.Text.Value() != "Buy milk" || f.Due.Value() != "2025-01-01" {
		t.Errorf("prefill = %q / %q", f.Text.Value(), f.Due.Value())
	}

	today := todo.Date{Year: 2024, Month: time.December, Day: 1}
	edit, err := f.ToEdit(today)
	if err != nil {
		t.Fatalf("ToEdit() error = %v", err)
	}
	if edit.Text != "Buy milk" || edit.Priority != todo.PriorityHigh || edit.Category != todo.CategoryShopping || *edit.DueDate != due {
		t.Errorf("edit = %+v", edit)
	}
}

func TestTaskForm_Reset(t *testing.T) {
	f := NewTaskForm()
	f.Text.SetValue("x")
	f.Due.SetValue("today")
	f.Priority = todo.PriorityLow
	f.Category = todo.CategoryWork
	f.Err = "bad"
	f.Focus(FormFieldDue)

	f.Reset()
	if f.Text.Value() != "" || f.Due.Value() != "" || f.Err != "" {
		t.Error("Reset() left values behind")
	}
	if f.Priority != DefaultPriority || f.Category != DefaultCategory {
		t.Errorf("Reset() = %s/%s", f.Priority, f.Category)
	}
	if f.FocusIndex != FormFieldText {
		t.Errorf("focus = %d", f.FocusIndex)
	}
}

func TestParseDueInput(t *testing.T) {
	today := todo.Date{Year: 2024, Month: time.December, Day: 31}

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"today", "2024-12-31", false},
		{"Tomorrow", "2025-01-01", false},
		{"2025-03-04", "2025-03-04", false},
		{"next week", "", true},
		{"2025-13-01", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDueInput(tt.in, today)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDueInput(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if tt.want == "" {
			if got != nil {
				t.Errorf("ParseDueInput(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil || got.String() != tt.want {
			t.Errorf("ParseDueInput(%q) = %v, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCycleCategory(t *testing.T) {
	if got := CycleCategory(todo.CategoryWork, 1); got != todo.CategoryPersonal {
		t.Errorf("work+1 = %s", got)
	}
	if got := CycleCategory(todo.CategoryWork, -1); got != todo.CategoryHealth {
		t.Errorf("work-1 = %s", got)
	}
}
