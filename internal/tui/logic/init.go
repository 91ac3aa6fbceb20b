package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	if h.Config == nil || !h.Config.UI.Notifications {
		return nil
	}
	// Check right away, then once a minute.
	now := h.Now()
	return func() tea.Msg { return checkDueMsg{at: now} }
}

func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg{at: t}
	})
}
