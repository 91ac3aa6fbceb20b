package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/components"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// Handler applies messages to the shared state.
type Handler struct {
	*state.State
}

// NewHandler creates a handler and keeps the visible list in step with the
// store.
func NewHandler(s *state.State) *Handler {
	h := &Handler{State: s}
	if s.Store != nil {
		s.Store.Subscribe(h.syncVisible)
		h.syncVisible(s.Store.Tasks())
	}
	return h
}

type errMsg struct{ err error }
type statusMsg struct{ msg string }

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case checkDueMsg:
		return h.handleCheckDue(msg.at)

	case components.CloseHelpMsg:
		h.CurrentView = h.PreviousView
		return nil

	case errMsg:
		h.Err = msg.err
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil
	}

	// Forward non-key messages (like blink) to the open form
	if h.CurrentView == state.ViewTaskForm && h.TaskForm != nil {
		return h.TaskForm.Update(msg)
	}
	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	h.TaskList.SetSize(msg.Width, h.ListHeight())
	h.HelpComp.SetSize(msg.Width, msg.Height)
	if h.TaskForm != nil {
		h.TaskForm.SetWidth(formWidth(msg.Width))
	}

	h.ensureCursorVisible()
	return nil
}

// syncVisible recomputes the filtered list after a store change, keeping
// the cursor on the same task when it is still shown.
func (h *Handler) syncVisible(tasks []todo.Task) {
	selected, hadSelection := h.SelectedTask()

	h.Visible = todo.Visible(tasks, h.Filter)

	if hadSelection {
		for i, t := range h.Visible {
			if t.ID == selected.ID {
				h.TaskCursor = i
				break
			}
		}
	}
	h.clampCursor()
	h.ensureCursorVisible()
}

// setFilter switches the active filter and resets the list position.
func (h *Handler) setFilter(f todo.Filter) {
	if f == h.Filter {
		return
	}
	h.Filter = f
	h.TaskCursor = 0
	h.ScrollOffset = 0
	h.Drag = state.DragState{}
	h.syncVisible(h.Store.Tasks())
	h.Logger.Debug("filter changed", "filter", f)
}

func formWidth(width int) int {
	return width - 16
}
