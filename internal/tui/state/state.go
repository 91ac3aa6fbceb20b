package state

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/components"
)

// View represents the current view/screen.
type View int

const (
	ViewList View = iota
	ViewTaskForm
	ViewHelp
)

// Screen layout. The list starts below the tab bar (tabs + bottom border)
// and the footer holds the key hints and the status bar.
const (
	TabBarHeight = 2
	ListTop      = TabBarHeight
	FooterHeight = 2
)

// DoubleClickInterval is the longest gap between two presses on the same
// row that still counts as a double click.
const DoubleClickInterval = 500 * time.Millisecond

// Click records the last mouse press on a task row.
type Click struct {
	TaskID int64
	At     time.Time
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store  *todo.Store
	Config *config.Config
	Logger *log.Logger
	Now    func() time.Time

	// View state
	CurrentView  View
	PreviousView View
	Filter       todo.Filter

	// Data: the tasks shown under Filter, in collection order
	Visible []todo.Task

	// List state
	TaskCursor   int
	ScrollOffset int

	// UI state
	Err       error
	StatusMsg string
	Width     int
	Height    int
	ShowHints bool

	// Key handling
	Keymap   KeymapData
	KeyState *KeyState

	// Components
	TaskList *components.TaskListModel
	HelpComp *components.HelpModel

	// Form state: the add form or the edit form of the open Edit session
	TaskForm *TaskForm
	Edit     EditSession

	// Mouse state
	Drag      DragState
	LastClick Click

	// Due-date notifications already sent
	NotifiedTasks map[int64]bool
}

// New creates the state for store and cfg.
func New(store *todo.Store, cfg *config.Config, logger *log.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &State{
		Store:         store,
		Config:        cfg,
		Logger:        logger,
		Now:           time.Now,
		CurrentView:   ViewList,
		Filter:        todo.FilterAll,
		ShowHints:     true,
		Keymap:        DefaultKeymap(),
		KeyState:      &KeyState{Vim: cfg.UI.VimMode},
		TaskList:      components.NewTaskList(),
		HelpComp:      components.NewHelp(),
		NotifiedTasks: make(map[int64]bool),
	}
}

// Today returns the current calendar day.
func (s *State) Today() todo.Date {
	return todo.DateOf(s.Now())
}

// DateFormat returns the layout used to show due dates.
func (s *State) DateFormat() string {
	if s.Config != nil && s.Config.UI.DateFormat != "" {
		return s.Config.UI.DateFormat
	}
	return "Jan 2, 2006"
}

// ListHeight returns the number of task rows that fit on screen.
func (s *State) ListHeight() int {
	h := s.Height - ListTop - s.FooterLines()
	if h < 1 {
		h = 1
	}
	return h
}

// FooterLines is the height of the footer: the status bar plus the key
// hints when shown.
func (s *State) FooterLines() int {
	if s.ShowHints {
		return FooterHeight
	}
	return FooterHeight - 1
}

// SelectedTask returns the task under the cursor.
func (s *State) SelectedTask() (todo.Task, bool) {
	if s.TaskCursor < 0 || s.TaskCursor >= len(s.Visible) {
		return todo.Task{}, false
	}
	return s.Visible[s.TaskCursor], true
}

// DisplayTasks returns the visible tasks in the order they are drawn: the
// drag order while a drag has moved rows, the collection order otherwise.
func (s *State) DisplayTasks() []todo.Task {
	if !s.Drag.Active || !s.Drag.Moved {
		return s.Visible
	}
	byID := make(map[int64]todo.Task, len(s.Visible))
	for _, t := range s.Visible {
		byID[t.ID] = t
	}
	out := make([]todo.Task, 0, len(s.Drag.Order))
	for _, id := range s.Drag.Order {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// VisibleIDs returns the ids of the visible tasks, in display order.
func (s *State) VisibleIDs() []int64 {
	ids := make([]int64, len(s.Visible))
	for i, t := range s.Visible {
		ids[i] = t.ID
	}
	return ids
}

// FilterInfo holds tab metadata.
type FilterInfo struct {
	Filter todo.Filter
	Name   string
	Count  int
}

// Label is the text drawn on the tab.
func (f FilterInfo) Label() string {
	return fmt.Sprintf("%s (%d)", f.Name, f.Count)
}

// GetFilterTabs returns the filter tabs in display order.
func GetFilterTabs() []FilterInfo {
	filters := todo.Filters()
	tabs := make([]FilterInfo, len(filters))
	for i, f := range filters {
		tabs[i] = FilterInfo{Filter: f, Name: f.Label()}
	}
	return tabs
}

// FilterTabs returns the filter tabs with the number of tasks each shows.
func (s *State) FilterTabs() []FilterInfo {
	var tasks []todo.Task
	if s.Store != nil {
		tasks = s.Store.Tasks()
	}
	tabs := GetFilterTabs()
	for i := range tabs {
		tabs[i].Count = len(todo.Visible(tasks, tabs[i].Filter))
	}
	return tabs
}
