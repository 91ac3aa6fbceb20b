// Package components provides the widgets the to-do screen is built from.
package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/todo"
)

// Component is a self-drawing part of the screen. The handler owns all
// task state; components only hold what they need to render.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// DataReceiver is a component fed with a snapshot before each render.
type DataReceiver[T any] interface {
	Component
	SetData(data T)
}

var (
	_ DataReceiver[[]todo.Task] = (*TaskListModel)(nil)
	_ Component                 = (*HelpModel)(nil)
)
