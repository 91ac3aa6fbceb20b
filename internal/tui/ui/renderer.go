package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// Renderer draws the shared state.
type Renderer struct {
	*state.State

	hints help.Model
}

func NewRenderer(s *state.State) *Renderer {
	hints := help.New()
	hints.ShortSeparator = " • "
	return &Renderer{State: s, hints: hints}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	switch r.CurrentView {
	case state.ViewHelp:
		r.HelpComp.SetKeymap(r.Keymap.HelpItems())
		r.HelpComp.SetSize(r.Width, r.Height)
		return r.HelpComp.View()
	case state.ViewTaskForm:
		return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, r.renderTaskForm())
	}
	return r.renderMainView()
}

// renderMainView renders the tab bar, the task list and the footer. The
// line positions match state.ListTop and state.ListHeight, which the mouse
// handler relies on.
func (r *Renderer) renderMainView() string {
	parts := []string{r.renderTabBar(), r.renderTaskList()}
	if r.ShowHints {
		parts = append(parts, r.renderHints())
	}
	parts = append(parts, r.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTabBar renders the filter tabs.
func (r *Renderer) renderTabBar() string {
	var tabStrs []string
	for _, t := range r.FilterTabs() {
		if r.Filter == t.Filter {
			tabStrs = append(tabStrs, styles.TabActive.Render(t.Label()))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(t.Label()))
		}
	}
	tabLine := strings.Join(tabStrs, " ")

	// Truncate if still too wide
	maxWidth := r.Width - styles.TabBar.GetHorizontalFrameSize()
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}
	return styles.TabBar.Width(r.Width).Render(tabLine)
}

// renderTaskList pushes the list state into the component and renders it.
func (r *Renderer) renderTaskList() string {
	tasks := r.DisplayTasks()

	cursor := -1
	var dragging int64
	if r.Drag.Active && r.Drag.Moved {
		dragging = r.Drag.TaskID
	}
	focusID := dragging
	if focusID == 0 {
		if t, ok := r.SelectedTask(); ok {
			focusID = t.ID
		}
	}
	for i, t := range tasks {
		if t.ID == focusID {
			cursor = i
			break
		}
	}

	r.TaskList.SetSize(r.Width, r.ListHeight())
	r.TaskList.SetData(tasks)
	r.TaskList.SetCursor(cursor)
	r.TaskList.SetScrollOffset(r.ScrollOffset)
	r.TaskList.SetDragging(dragging)
	r.TaskList.SetToday(r.Today())
	r.TaskList.SetDateLayout(r.DateFormat())
	r.TaskList.SetEmptyMessage(emptyMessage(r.Filter, r.Store.Len()))
	return r.TaskList.View()
}

func emptyMessage(f todo.Filter, total int) string {
	switch {
	case total == 0:
		return "No tasks yet. Press a to add one."
	case f == todo.FilterActive:
		return "Nothing left to do."
	case f == todo.FilterCompleted:
		return "No completed tasks."
	}
	return "No tasks."
}

// renderHints renders the short key help line.
func (r *Renderer) renderHints() string {
	r.hints.Width = r.Width
	return lipgloss.NewStyle().MaxWidth(r.Width).Render(r.hints.View(r.Keymap))
}

// renderStatusBar renders the message or error on the left and the summary
// on the right.
func (r *Renderer) renderStatusBar() string {
	summary := r.Store.Summary()
	right := styles.StatusBarText.Render(summary.TotalText() + "  " + summary.CompletedText())
	rightWidth := lipgloss.Width(right)

	padding := styles.StatusBar.GetHorizontalFrameSize()
	maxLeft := r.Width - rightWidth - padding - 2

	left := ""
	switch {
	case r.Err != nil:
		left = styles.StatusBarError.Render(oneLine("Error: "+r.Err.Error(), maxLeft))
	case r.Store.Err() != nil:
		left = styles.StatusBarError.Render(oneLine("Storage: "+r.Store.Err().Error(), maxLeft))
	case r.StatusMsg != "":
		left = styles.StatusBarSuccess.Render(oneLine(r.StatusMsg, maxLeft))
	}

	spacing := r.Width - lipgloss.Width(left) - rightWidth - padding
	if spacing < 0 {
		spacing = 0
	}
	return styles.StatusBar.MaxWidth(r.Width).Render(left + strings.Repeat(" ", spacing) + right)
}
