// Package tui provides the terminal user interface for the to-do list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/logic"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application. It owns the
// shared state; the handler mutates it and the renderer draws it.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates the application model over store, starting on filter.
func NewApp(store *todo.Store, cfg *config.Config, logger *log.Logger, filter todo.Filter) *App {
	s := state.New(store, cfg, logger)
	s.Filter = filter
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// State exposes the model state to tests.
func (a *App) State() *state.State {
	return a.state
}
