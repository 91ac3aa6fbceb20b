package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Route key messages based on current view
	switch h.CurrentView {
	case state.ViewHelp:
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	case state.ViewTaskForm:
		return h.handleFormKeyMsg(msg)
	}

	// Keys are ignored while a drag is in progress
	if h.Drag.Active {
		return nil
	}

	// Process key through keymap
	action, consumed := h.KeyState.HandleKey(msg, h.Keymap)
	if !consumed || action == "" {
		return nil
	}
	h.StatusMsg = ""
	h.Err = nil

	switch action {
	case "quit":
		return tea.Quit
	case "help":
		h.HelpComp.SetKeymap(h.Keymap.HelpItems())
		h.PreviousView = h.CurrentView
		h.CurrentView = state.ViewHelp
		return nil
	case "refresh":
		return h.handleRefresh()
	case "toggle_hints":
		h.ShowHints = !h.ShowHints
		h.TaskList.SetSize(h.Width, h.ListHeight())
		h.ensureCursorVisible()
		return nil
	case "back":
		return nil
	case "up":
		h.moveCursor(-1)
	case "down":
		h.moveCursor(1)
	case "top":
		h.moveCursorTo(0)
	case "bottom":
		h.moveCursorToEnd()
	case "half_up":
		h.moveCursor(-h.ListHeight() / 2)
	case "half_down":
		h.moveCursor(h.ListHeight() / 2)
	case "next_filter":
		h.setFilter(h.Filter.Next())
	case "prev_filter":
		h.setFilter(h.Filter.Prev())
	case "add":
		return h.handleAdd()
	case "clear_completed":
		return h.handleClearCompleted()
	default:
		task, ok := h.SelectedTask()
		if !ok {
			return nil
		}
		return h.handleTaskAction(action, task)
	}
	return nil
}

// handleTaskAction applies an action to the selected task.
func (h *Handler) handleTaskAction(action string, task todo.Task) tea.Cmd {
	switch action {
	case "edit":
		return h.handleEdit(task)
	case "complete":
		return h.handleComplete(task.ID)
	case "delete":
		return h.handleDelete(task.ID)
	case "copy":
		return h.handleCopy(task)
	case "priority_high":
		return h.handlePriority(task.ID, todo.PriorityHigh)
	case "priority_medium":
		return h.handlePriority(task.ID, todo.PriorityMedium)
	case "priority_low":
		return h.handlePriority(task.ID, todo.PriorityLow)
	case "cycle_category":
		return h.handleCycleCategory(task)
	case "due_today":
		return h.handleDue(task.ID, 0)
	case "due_tomorrow":
		return h.handleDue(task.ID, 1)
	case "clear_due":
		return h.handleDue(task.ID, -1)
	case "move_down":
		return h.handleMove(1)
	case "move_up":
		return h.handleMove(-1)
	}
	return nil
}

// handleFormKeyMsg handles keyboard input for the add/edit form.
func (h *Handler) handleFormKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if h.TaskForm == nil {
		h.CurrentView = state.ViewList
		return nil
	}

	switch msg.String() {
	case "esc":
		// Cancel form and go back
		h.closeForm()
		return nil

	case "ctrl+s":
		return h.submitForm()

	case "enter":
		// Text and due inputs and the submit button submit; the selectors
		// advance to the next field.
		switch h.TaskForm.FocusIndex {
		case state.FormFieldText, state.FormFieldDue, state.FormFieldSubmit:
			return h.submitForm()
		}
		h.TaskForm.NextField()
		return nil
	}

	// Forward to form
	return h.TaskForm.Update(msg)
}
