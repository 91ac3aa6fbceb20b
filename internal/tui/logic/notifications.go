package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/todo-tui/internal/config"
)

// Tasks have no time of day; they fall due at 09:00 local time.
const (
	dueHour         = 9
	notifyThreshold = 60 * time.Minute
)

type checkDueMsg struct{ at time.Time }

// notify is swapped out in tests.
var notify = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

func (h *Handler) handleCheckDue(t time.Time) tea.Cmd {
	// Always schedule the next check
	cmds := []tea.Cmd{checkDueCmd()}
	for _, text := range h.dueNow(t) {
		cmds = append(cmds, h.notifyCmd(text))
	}
	return tea.Batch(cmds...)
}

// dueNow returns the text of tasks that fell due within notifyThreshold
// before t and marks every due task as handled.
func (h *Handler) dueNow(t time.Time) []string {
	tasks := h.Store.Tasks()
	h.Logger.Debug("checking due tasks", "at", t, "count", len(tasks))

	var due []string
	for _, task := range tasks {
		if h.NotifiedTasks[task.ID] || task.Completed || task.DueDate == nil {
			continue
		}

		dueTime := task.DueDate.Time(time.Local).Add(dueHour * time.Hour)
		if t.Before(dueTime) {
			continue
		}

		// Mark as notified either way so we don't check again
		h.NotifiedTasks[task.ID] = true

		// Skip tasks that fell due long before the app was opened
		if t.Sub(dueTime) > notifyThreshold {
			h.Logger.Debug("skipping stale due task", "id", task.ID, "late", t.Sub(dueTime))
			continue
		}
		due = append(due, task.Text)
	}
	return due
}

func (h *Handler) notifyCmd(text string) tea.Cmd {
	logger := h.Logger
	return func() tea.Msg {
		if err := notify(config.AppName, "Task Due: "+text); err != nil {
			logger.Warn("failed to send notification", "err", err)
		}
		return nil
	}
}
