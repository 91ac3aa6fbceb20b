package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/tui/components"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	// The form and help views are keyboard driven
	if h.CurrentView != state.ViewList {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			h.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			h.moveCursor(1)
		case tea.MouseButtonLeft:
			return h.handlePress(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		h.handleDragMotion(msg.Y)
	case tea.MouseActionRelease:
		h.handleDragRelease()
	}
	return nil
}

// handlePress dispatches a left press by screen region and row zone.
func (h *Handler) handlePress(x, y int) tea.Cmd {
	// Tab bar: tabs on the first line, border below
	if y < state.TabBarHeight {
		return h.handleTabClick(x)
	}

	rows := state.RowsFor(h.VisibleIDs(), state.ListTop, h.ScrollOffset, h.ListHeight())
	row, ok := state.RowAt(rows, y)
	if !ok {
		return nil
	}
	h.selectTask(row.ID)
	task, ok := h.Store.Get(row.ID)
	if !ok {
		return nil
	}

	switch components.ZoneAt(x, h.Width) {
	case components.ZoneCheckbox:
		h.LastClick = state.Click{}
		return h.handleComplete(row.ID)
	case components.ZoneDelete:
		h.LastClick = state.Click{}
		return h.handleDelete(row.ID)
	case components.ZoneEdit:
		h.LastClick = state.Click{}
		return h.handleEdit(task)
	case components.ZoneHandle:
		h.Drag.Start(row.ID, h.VisibleIDs(), y)
	case components.ZoneText:
		now := h.Now()
		last := h.LastClick
		if last.TaskID == row.ID && now.Sub(last.At) <= state.DoubleClickInterval {
			h.LastClick = state.Click{}
			return h.handleEdit(task)
		}
		h.LastClick = state.Click{TaskID: row.ID, At: now}
		h.Drag.Start(row.ID, h.VisibleIDs(), y)
	}
	return nil
}

// handleDragMotion moves the dragged row under the pointer.
func (h *Handler) handleDragMotion(y int) {
	if !h.Drag.Active {
		return
	}
	rows := state.RowsFor(h.Drag.Order, state.ListTop, h.ScrollOffset, h.ListHeight())
	h.Drag.Move(rows, y)
}

// handleDragRelease commits the dragged order, if it changed.
func (h *Handler) handleDragRelease() {
	if !h.Drag.Active {
		return
	}
	id := h.Drag.TaskID
	order, moved := h.Drag.Stop()
	if !moved {
		return
	}
	h.LastClick = state.Click{}
	h.reorderVisible(order)
	h.selectTask(id)
}

// handleTabClick handles mouse clicks on the tab bar.
func (h *Handler) handleTabClick(x int) tea.Cmd {
	// Start after styles.TabBar left padding
	currentPos := 1

	for _, t := range h.FilterTabs() {
		// Render the tab to get its actual width (includes padding from styles.Tab/styles.TabActive style)
		var renderedTab string
		if h.Filter == t.Filter {
			renderedTab = styles.TabActive.Render(t.Label())
		} else {
			renderedTab = styles.Tab.Render(t.Label())
		}

		endPos := currentPos + lipgloss.Width(renderedTab)
		if x >= currentPos && x < endPos {
			h.setFilter(t.Filter)
			return nil
		}

		// +1 for the space between tabs
		currentPos = endPos + 1
	}
	return nil
}
