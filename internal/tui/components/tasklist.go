package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// TaskListModel renders the filtered tasks one row per line. The cursor,
// scroll offset and drag state are owned by the caller and pushed in
// before View.
type TaskListModel struct {
	tasks         []todo.Task
	cursor        int
	scrollOffset  int
	draggingID    int64
	today         todo.Date
	dateLayout    string
	width, height int
	viewportReady bool
	viewport      viewport.Model
	emptyMessage  string
}

// NewTaskList creates a new TaskListModel.
func NewTaskList() *TaskListModel {
	return &TaskListModel{
		dateLayout:   "Jan 2, 2006",
		emptyMessage: "No tasks",
	}
}

// Init implements Component.
func (t *TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Input is routed by the application handler,
// so the list only reacts to size changes.
func (t *TaskListModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		t.SetSize(msg.Width, t.height)
	}
	return t, nil
}

// View implements Component.
func (t *TaskListModel) View() string {
	var content string
	if len(t.tasks) == 0 {
		content = styles.EmptyState.Render(t.emptyMessage)
	} else {
		lines := make([]string, len(t.tasks))
		for i := range t.tasks {
			lines[i] = t.renderRow(i)
		}
		content = strings.Join(lines, "\n")
	}

	if !t.viewportReady {
		return content
	}
	t.viewport.SetContent(content)
	t.viewport.SetYOffset(t.scrollOffset)
	return t.viewport.View()
}

// SetSize implements Component.
func (t *TaskListModel) SetSize(width, height int) {
	t.width = width
	t.height = height

	if !t.viewportReady {
		t.viewport = viewport.New(width, height)
		t.viewport.Style = lipgloss.NewStyle()
		t.viewport.MouseWheelEnabled = false
		t.viewportReady = true
	} else {
		t.viewport.Width = width
		t.viewport.Height = height
	}
}

// SetData implements DataReceiver.
func (t *TaskListModel) SetData(tasks []todo.Task) {
	t.tasks = tasks
}

// SetCursor sets the highlighted row.
func (t *TaskListModel) SetCursor(pos int) {
	t.cursor = pos
}

// SetScrollOffset sets the first visible row.
func (t *TaskListModel) SetScrollOffset(offset int) {
	t.scrollOffset = offset
}

// SetDragging marks the row being dragged; 0 clears it.
func (t *TaskListModel) SetDragging(id int64) {
	t.draggingID = id
}

// SetToday sets the day due dates are compared against.
func (t *TaskListModel) SetToday(d todo.Date) {
	t.today = d
}

// SetDateLayout sets the layout due dates are shown with.
func (t *TaskListModel) SetDateLayout(layout string) {
	if layout != "" {
		t.dateLayout = layout
	}
}

// SetEmptyMessage sets the message shown when no tasks exist.
func (t *TaskListModel) SetEmptyMessage(msg string) {
	t.emptyMessage = msg
}

// Layout returns the current row layout.
func (t *TaskListModel) Layout() RowLayout {
	return LayoutFor(t.width, t.dateLayout)
}

// renderRow renders a single task line.
func (t *TaskListModel) renderRow(i int) string {
	task := t.tasks[i]
	layout := t.Layout()
	selected := i == t.cursor
	dragging := t.draggingID != 0 && task.ID == t.draggingID

	// Cursor or drag marker
	marker := "  "
	switch {
	case dragging:
		marker = styles.TaskCursor.Render(styles.IconDrag) + " "
	case selected:
		marker = styles.TaskCursor.Render(styles.IconCursor) + " "
	}

	checkbox := styles.CheckboxUnchecked
	if task.Completed {
		checkbox = styles.CheckboxChecked
	}

	// Text: style only the glyphs so strikethrough stops at the last word
	textStyle := styles.TaskText
	if task.Completed {
		textStyle = styles.TaskCompleted
	}
	if selected {
		textStyle = textStyle.Inherit(styles.TaskSelected)
	}
	if dragging {
		textStyle = styles.TaskDragging
	}
	text := Truncate(todo.CleanText(task.Text), layout.Text)
	pad := layout.Text - runewidth.StringWidth(text)

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(checkbox)
	b.WriteString(" ")
	b.WriteString(textStyle.Render(text))
	b.WriteString(strings.Repeat(" ", pad))

	if !layout.Compact {
		b.WriteString(" ")
		b.WriteString(styles.PriorityStyle(task.Priority).Render(runewidth.FillRight(task.Priority.Label(), priorityWidth)))
		b.WriteString(" ")
		b.WriteString(styles.CategoryStyle(task.Category).Render(runewidth.FillRight(task.Category.Label(), categoryWidth)))
		b.WriteString(" ")
		b.WriteString(t.dueStyle(task).Render(runewidth.FillRight(task.DueDisplay(t.dateLayout), layout.Due)))
	}

	b.WriteString(" ")
	b.WriteString(styles.ActionEdit.Render(styles.IconEdit))
	b.WriteString(" ")
	b.WriteString(styles.ActionDelete.Render(styles.IconDelete))
	return b.String()
}

func (t *TaskListModel) dueStyle(task todo.Task) lipgloss.Style {
	switch {
	case task.IsOverdue(t.today):
		return styles.TaskDueOverdue
	case task.IsDueToday(t.today):
		return styles.TaskDueToday
	}
	return styles.TaskDue
}
