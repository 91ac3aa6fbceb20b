package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/storage"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

func TestAppRoundTrip(t *testing.T) {
	store := todo.NewStore(storage.NewMemoryStore())
	app := NewApp(store, nil, nil, todo.FilterActive)

	if got := app.View(); got != "Loading..." {
		t.Errorf("View() before resize = %q", got)
	}

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if model != app {
		t.Fatal("Update() returned a different model")
	}
	if lines := strings.Count(app.View(), "\n") + 1; lines != 24 {
		t.Errorf("View() has %d lines, want 24", lines)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Water plants")})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	s := app.State()
	if s.CurrentView != state.ViewList || s.Filter != todo.FilterActive {
		t.Errorf("view %v, filter %v", s.CurrentView, s.Filter)
	}
	if len(s.Visible) != 1 || s.Visible[0].Text != "Water plants" {
		t.Errorf("visible = %+v", s.Visible)
	}
	if !strings.Contains(app.View(), "Total: 1 task") {
		t.Error("summary missing from view")
	}
}

func TestAppInitWithoutNotifications(t *testing.T) {
	app := NewApp(todo.NewStore(storage.NewMemoryStore()), nil, nil, todo.FilterAll)
	if cmd := app.Init(); cmd != nil {
		t.Error("Init() returned a command with notifications off")
	}
}
