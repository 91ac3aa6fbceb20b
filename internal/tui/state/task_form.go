package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/todo"
)

// FormField constants for focus management
const (
	FormFieldText = iota
	FormFieldPriority
	FormFieldCategory
	FormFieldDue
	FormFieldSubmit
)

const formFieldCount = 5

// Form modes.
const (
	FormModeCreate = "create"
	FormModeEdit   = "edit"
)

// Defaults the add form resets to.
const (
	DefaultPriority = todo.PriorityMedium
	DefaultCategory = todo.CategoryPersonal
)

// TaskForm represents the state of the task creation/editing form.
type TaskForm struct {
	Text     textinput.Model
	Due      textinput.Model
	Priority todo.Priority
	Category todo.Category

	FocusIndex int

	// Mode tracking
	Mode   string // "create" or "edit"
	TaskID int64  // ID of task being edited

	// Err is shown under the fields after a rejected submit.
	Err string
}

// NewTaskForm creates an empty form in create mode.
func NewTaskForm() *TaskForm {
	text := textinput.New()
	text.Placeholder = "What needs to be done?"
	text.Focus()
	text.CharLimit = 500
	text.Width = 50

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD, today, tomorrow"
	due.CharLimit = 20
	due.Width = 30

	return &TaskForm{
		Text:     text,
		Due:      due,
		Priority: DefaultPriority,
		Category: DefaultCategory,
		Mode:     FormModeCreate,
	}
}

// NewEditTaskForm creates a form pre-filled from t.
func NewEditTaskForm(t todo.Task) *TaskForm {
	f := NewTaskForm()
	f.Mode = FormModeEdit
	f.TaskID = t.ID
	f.Text.SetValue(t.Text)
	f.Text.CursorEnd()
	f.Priority = t.Priority
	f.Category = t.Category
	if t.DueDate != nil {
		f.Due.SetValue(t.DueDate.String())
	}
	return f
}

// IsEdit reports whether the form edits an existing task.
func (f *TaskForm) IsEdit() bool {
	return f.Mode == FormModeEdit
}

// Update updates the form models.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}

		// Handle specific field input
		switch f.FocusIndex {
		case FormFieldPriority:
			switch msg.String() {
			case "1":
				f.Priority = todo.PriorityHigh
			case "2":
				f.Priority = todo.PriorityMedium
			case "3":
				f.Priority = todo.PriorityLow
			case "h", "left":
				f.Priority = cyclePriority(f.Priority, -1)
			case "l", "right", " ":
				f.Priority = cyclePriority(f.Priority, 1)
			}
			return nil
		case FormFieldCategory:
			switch msg.String() {
			case "1", "2", "3", "4":
				f.Category = todo.Categories()[int(msg.String()[0]-'1')]
			case "h", "left":
				f.Category = CycleCategory(f.Category, -1)
			case "l", "right", " ":
				f.Category = CycleCategory(f.Category, 1)
			}
			return nil
		case FormFieldSubmit:
			return nil
		}
	}

	// Only update text inputs if focused
	var cmd tea.Cmd
	switch f.FocusIndex {
	case FormFieldText:
		f.Text, cmd = f.Text.Update(msg)
	case FormFieldDue:
		f.Due, cmd = f.Due.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus moves focus to the field at index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.Text.Blur()
	f.Due.Blur()

	switch index {
	case FormFieldText:
		f.Text.Focus()
	case FormFieldDue:
		f.Due.Focus()
	}
}

// IsValid checks if the form is valid.
func (f *TaskForm) IsValid() bool {
	return strings.TrimSpace(f.Text.Value()) != ""
}

// ParseDue parses the due field relative to today.
func (f *TaskForm) ParseDue(today todo.Date) (*todo.Date, error) {
	return ParseDueInput(f.Due.Value(), today)
}

// ToEdit converts the form into the fields a save commits.
func (f *TaskForm) ToEdit(today todo.Date) (todo.Edit, error) {
	due, err := f.ParseDue(today)
	if err != nil {
		return todo.Edit{}, err
	}
	return todo.Edit{
		Text:     strings.TrimSpace(f.Text.Value()),
		Priority: f.Priority,
		Category: f.Category,
		DueDate:  due,
	}, nil
}

// Reset clears the form back to the create defaults, keeping its width.
func (f *TaskForm) Reset() {
	f.Text.SetValue("")
	f.Due.SetValue("")
	f.Priority = DefaultPriority
	f.Category = DefaultCategory
	f.Err = ""
	f.Focus(FormFieldText)
}

// SetWidth sets width of inputs
func (f *TaskForm) SetWidth(width int) {
	if width > 60 {
		width = 60
	}
	if width < 10 {
		width = 10
	}
	f.Text.Width = width
	f.Due.Width = width
}

var errBadDue = errors.New("due date must be YYYY-MM-DD, today or tomorrow")

// ParseDueInput parses "", "today", "tomorrow" or "YYYY-MM-DD". Empty means
// no due date.
func ParseDueInput(s string, today todo.Date) (*todo.Date, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var d todo.Date
	switch s {
	case "", "none":
		return nil, nil
	case "today", "tod":
		d = today
	case "tomorrow", "tom":
		d = today.AddDays(1)
	default:
		parsed, err := todo.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadDue, s)
		}
		d = parsed
	}
	return &d, nil
}

// CycleCategory returns the category delta steps away, wrapping around.
func CycleCategory(c todo.Category, delta int) todo.Category {
	all := todo.Categories()
	return all[step(indexOf(all, c), delta, len(all))]
}

func cyclePriority(p todo.Priority, delta int) todo.Priority {
	all := todo.Priorities()
	return all[step(indexOf(all, p), delta, len(all))]
}

func indexOf[T comparable](all []T, v T) int {
	for i, x := range all {
		if x == v {
			return i
		}
	}
	return 0
}

func step(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}
