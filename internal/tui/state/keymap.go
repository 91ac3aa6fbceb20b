package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Binding converts k for the bubbles help view.
func (k Key) Binding() key.Binding {
	return key.NewBinding(key.WithKeys(k.Key), key.WithHelp(k.Key, k.Help))
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up       Key
	Down     Key
	Top      Key
	Bottom   Key
	HalfUp   Key
	HalfDown Key

	// Filters
	NextFilter Key
	PrevFilter Key

	// Actions
	Back        Key
	Quit        Key
	Help        Key
	Refresh     Key
	ToggleHints Key

	// Task actions
	AddTask        Key
	EditTask       Key
	DeleteTask     Key
	CompleteTask   Key
	CopyTask       Key
	PriorityHigh   Key
	PriorityMedium Key
	PriorityLow    Key
	CycleCategory  Key
	DueToday       Key
	DueTomorrow    Key
	ClearDue       Key
	MoveTaskDown   Key
	MoveTaskUp     Key
	ClearCompleted Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		// Navigation
		Up:       Key{Key: "k", Help: "up"},
		Down:     Key{Key: "j", Help: "down"},
		Top:      Key{Key: "g", Help: "top (gg)"},
		Bottom:   Key{Key: "G", Help: "bottom"},
		HalfUp:   Key{Key: "ctrl+u", Help: "half page up"},
		HalfDown: Key{Key: "ctrl+d", Help: "half page down"},

		// Filters
		NextFilter: Key{Key: "tab", Help: "next filter"},
		PrevFilter: Key{Key: "shift+tab", Help: "prev filter"},

		// Actions
		Back:        Key{Key: "esc", Help: "back"},
		Quit:        Key{Key: "q", Help: "quit"},
		Help:        Key{Key: "?", Help: "help"},
		Refresh:     Key{Key: "r", Help: "reload"},
		ToggleHints: Key{Key: "f1", Help: "hints"},

		// Task actions
		AddTask:        Key{Key: "a", Help: "add"},
		EditTask:       Key{Key: "e", Help: "edit"},
		DeleteTask:     Key{Key: "d", Help: "delete (dd)"},
		CompleteTask:   Key{Key: "x", Help: "done"},
		CopyTask:       Key{Key: "y", Help: "copy (yy)"},
		PriorityHigh:   Key{Key: "1", Help: "high"},
		PriorityMedium: Key{Key: "2", Help: "medium"},
		PriorityLow:    Key{Key: "3", Help: "low"},
		CycleCategory:  Key{Key: "c", Help: "category"},
		DueToday:       Key{Key: "<", Help: "due today"},
		DueTomorrow:    Key{Key: ">", Help: "due tomorrow"},
		ClearDue:       Key{Key: "-", Help: "clear due"},
		MoveTaskDown:   Key{Key: "J", Help: "move down"},
		MoveTaskUp:     Key{Key: "K", Help: "move up"},
		ClearCompleted: Key{Key: "C", Help: "clear completed"},
	}
}

// ShortHelp implements help.KeyMap for the footer hints.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{
		k.AddTask.Binding(),
		k.EditTask.Binding(),
		k.CompleteTask.Binding(),
		k.DeleteTask.Binding(),
		k.NextFilter.Binding(),
		k.Help.Binding(),
		k.Quit.Binding(),
	}
}

// FullHelp implements help.KeyMap.
func (k KeymapData) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up.Binding(), k.Down.Binding(), k.Top.Binding(), k.Bottom.Binding()},
		{k.AddTask.Binding(), k.EditTask.Binding(), k.CompleteTask.Binding(), k.DeleteTask.Binding()},
		{k.PriorityHigh.Binding(), k.PriorityMedium.Binding(), k.PriorityLow.Binding(), k.CycleCategory.Binding()},
		{k.NextFilter.Binding(), k.PrevFilter.Binding(), k.Help.Binding(), k.Quit.Binding()},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
// Sequences and the j/k/g letters are only active in Vim mode.
type KeyState struct {
	Vim      bool
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if ks.Vim {
		if action, consumed, done := ks.handleSequence(key); done {
			return action, consumed
		}
	}

	// Keys that work in both modes
	switch key {
	case "up":
		return "up", true
	case "down":
		return "down", true
	case "home":
		return "top", true
	case "end":
		return "bottom", true
	case "pgup", keymap.HalfUp.Key:
		return "half_up", true
	case "pgdown", keymap.HalfDown.Key:
		return "half_down", true
	case keymap.NextFilter.Key, "right":
		return "next_filter", true
	case keymap.PrevFilter.Key, "left":
		return "prev_filter", true
	case "enter", keymap.EditTask.Key:
		return "edit", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key:
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.ToggleHints.Key:
		return "toggle_hints", true
	case keymap.AddTask.Key:
		return "add", true
	case keymap.CompleteTask.Key, " ":
		return "complete", true
	case "delete":
		return "delete", true
	case keymap.PriorityHigh.Key, "!":
		return "priority_high", true
	case keymap.PriorityMedium.Key, "@":
		return "priority_medium", true
	case keymap.PriorityLow.Key, "#":
		return "priority_low", true
	case keymap.CycleCategory.Key:
		return "cycle_category", true
	case keymap.DueToday.Key:
		return "due_today", true
	case keymap.DueTomorrow.Key:
		return "due_tomorrow", true
	case keymap.ClearDue.Key:
		return "clear_due", true
	case keymap.MoveTaskDown.Key, "shift+down":
		return "move_down", true
	case keymap.MoveTaskUp.Key, "shift+up":
		return "move_up", true
	case keymap.ClearCompleted.Key:
		return "clear_completed", true
	}

	if !ks.Vim {
		switch key {
		case keymap.DeleteTask.Key:
			return "delete", true
		case keymap.CopyTask.Key:
			return "copy", true
		}
	}

	return "", false
}

// handleSequence resolves the Vim-only keys. done is false when key should
// fall through to the shared bindings.
func (ks *KeyState) handleSequence(key string) (action string, consumed, done bool) {
	// Handle 'gg' sequence (go to top)
	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true, true
		}
	}

	// Handle 'dd' sequence (delete)
	if ks.WaitingD {
		ks.WaitingD = false
		if key == "d" {
			return "delete", true, true
		}
	}

	// Handle 'yy' sequence (copy)
	if ks.WaitingY {
		ks.WaitingY = false
		if key == "y" {
			return "copy", true, true
		}
	}

	switch key {
	case "g":
		ks.WaitingG = true
		ks.LastKey = key
		return "", true, true
	case "d":
		ks.WaitingD = true
		ks.LastKey = key
		return "", true, true
	case "y":
		ks.WaitingY = true
		ks.LastKey = key
		return "", true, true
	case "k":
		return "up", true, true
	case "j":
		return "down", true, true
	case "G":
		return "bottom", true, true
	case "h":
		return "prev_filter", true, true
	case "l":
		return "next_filter", true, true
	}

	return "", false, false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/G", "Go to top/bottom"},
		{k.HalfUp.Key + "/" + k.HalfDown.Key, "Half page up/down"},
		{"", ""},
		{"Filters", ""},
		{k.NextFilter.Key + "/" + k.PrevFilter.Key, "Next/previous filter"},
		{"h/l", "Previous/next filter"},
		{"click", "Select a filter tab"},
		{"", ""},
		{"Task Actions", ""},
		{k.AddTask.Key, "Add new task"},
		{k.EditTask.Key + "/enter", "Edit task"},
		{k.CompleteTask.Key + "/space", "Complete/uncomplete task"},
		{"dd", "Delete task"},
		{"yy", "Copy task text to clipboard"},
		{"1/2/3", "Priority high/medium/low"},
		{k.CycleCategory.Key, "Cycle category"},
		{k.DueToday.Key + "/" + k.DueTomorrow.Key, "Due today/tomorrow"},
		{k.ClearDue.Key, "Clear due date"},
		{k.MoveTaskDown.Key + "/" + k.MoveTaskUp.Key, "Move task down/up"},
		{k.ClearCompleted.Key, "Delete completed tasks"},
		{"", ""},
		{"Mouse", ""},
		{"[ ]", "Toggle completed"},
		{"✎ / double-click", "Edit task"},
		{"✗", "Delete task"},
		{"drag", "Reorder tasks"},
		{"", ""},
		{"General", ""},
		{k.Refresh.Key, "Reload from storage"},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Go back / Cancel"},
		{k.ToggleHints.Key, "Toggle key hints"},
		{k.Quit.Key, "Quit"},
	}
}
