package logic

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// handleAdd opens the add form.
func (h *Handler) handleAdd() tea.Cmd {
	h.TaskForm = state.NewTaskForm()
	h.TaskForm.SetWidth(formWidth(h.Width))
	h.PreviousView = h.CurrentView
	h.CurrentView = state.ViewTaskForm
	return textinput.Blink
}

// handleEdit opens the edit form for t. Only one task can be edited at a
// time.
func (h *Handler) handleEdit(t todo.Task) tea.Cmd {
	if !h.Edit.Open(t) {
		return nil
	}
	h.Drag = state.DragState{}
	h.TaskForm = state.NewEditTaskForm(t)
	h.TaskForm.SetWidth(formWidth(h.Width))
	h.PreviousView = h.CurrentView
	h.CurrentView = state.ViewTaskForm
	return textinput.Blink
}

// closeForm leaves the form, discarding an open edit.
func (h *Handler) closeForm() {
	if h.TaskForm != nil && h.TaskForm.IsEdit() {
		h.Edit.Cancel()
	}
	h.TaskForm = nil
	h.CurrentView = state.ViewList
}

// submitForm adds or saves the form's task.
func (h *Handler) submitForm() tea.Cmd {
	f := h.TaskForm
	if f == nil {
		return nil
	}

	edit, err := f.ToEdit(h.Today())
	if err != nil {
		f.Err = err.Error()
		f.Focus(state.FormFieldDue)
		return nil
	}
	// Empty text: keep the form open and wait for input
	if edit.Text == "" {
		f.Err = ""
		f.Focus(state.FormFieldText)
		return nil
	}

	if f.IsEdit() {
		id := f.TaskID
		if !h.Edit.Save(h.Store, edit) {
			if !h.Edit.IsOpen() {
				h.closeForm()
				h.StatusMsg = "Task no longer exists"
			}
			return nil
		}
		h.closeForm()
		h.selectTask(id)
		h.StatusMsg = "Task updated"
		return nil
	}

	task, ok := h.Store.Add(edit.Text, edit.Priority, edit.Category, edit.DueDate)
	if !ok {
		return nil
	}
	h.Logger.Debug("task added", "id", task.ID)
	f.Reset()
	h.selectTask(task.ID)
	h.StatusMsg = "Task added"
	return nil
}

// handleComplete toggles the completed state of the task with id.
func (h *Handler) handleComplete(id int64) tea.Cmd {
	if !h.Store.ToggleCompleted(id) {
		return nil
	}
	if t, ok := h.Store.Get(id); ok && t.Completed {
		h.StatusMsg = "Task completed"
	} else {
		h.StatusMsg = "Task reopened"
	}
	return nil
}

// handleDelete removes the task with id.
func (h *Handler) handleDelete(id int64) tea.Cmd {
	if editing, open := h.Edit.TaskID(); open && editing == id {
		h.Edit.Cancel()
	}
	if h.Store.Delete(id) {
		h.StatusMsg = "Task deleted"
	}
	return nil
}

func (h *Handler) handlePriority(id int64, p todo.Priority) tea.Cmd {
	if h.Store.SetPriority(id, p) {
		h.StatusMsg = "Priority: " + p.Label()
	}
	return nil
}

func (h *Handler) handleCycleCategory(t todo.Task) tea.Cmd {
	next := state.CycleCategory(t.Category, 1)
	if h.Store.SetCategory(t.ID, next) {
		h.StatusMsg = "Category: " + next.Label()
	}
	return nil
}

// handleDue sets the due date to today plus days, or clears it when days
// is negative.
func (h *Handler) handleDue(id int64, days int) tea.Cmd {
	var due *todo.Date
	if days >= 0 {
		d := h.Today().AddDays(days)
		due = &d
	}
	if !h.Store.SetDueDate(id, due) {
		return nil
	}
	if due == nil {
		h.StatusMsg = "Due date cleared"
	} else {
		h.StatusMsg = "Due " + due.Format(h.DateFormat())
	}
	return nil
}

// handleMove swaps the selected task with its visible neighbour.
func (h *Handler) handleMove(delta int) tea.Cmd {
	from := h.TaskCursor
	to := from + delta
	if from < 0 || to < 0 || to >= len(h.Visible) {
		return nil
	}

	ids := h.VisibleIDs()
	ids[from], ids[to] = ids[to], ids[from]
	h.reorderVisible(ids)
	return nil
}

// reorderVisible commits a new order of the visible tasks.
func (h *Handler) reorderVisible(visible []int64) {
	merged := state.MergeOrder(h.Store.IDs(), visible)
	if h.Store.Reorder(merged) {
		h.Logger.Debug("tasks reordered", "filter", h.Filter)
	}
}

func (h *Handler) handleClearCompleted() tea.Cmd {
	n := h.Store.ClearCompleted()
	switch n {
	case 0:
		h.StatusMsg = "No completed tasks"
	case 1:
		h.StatusMsg = "Cleared 1 completed task"
	default:
		h.StatusMsg = fmt.Sprintf("Cleared %d completed tasks", n)
	}
	return nil
}

// handleCopy copies task text to clipboard.
func (h *Handler) handleCopy(t todo.Task) tea.Cmd {
	text := t.Text
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied: " + text}
	}
}

func (h *Handler) handleRefresh() tea.Cmd {
	h.Store.Reload()
	if err := h.Store.Err(); err != nil {
		return nil
	}
	h.StatusMsg = "Reloaded"
	return nil
}
