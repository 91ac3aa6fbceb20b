package todo

import (
	"fmt"
	"strings"
)

// Filter restricts which tasks are shown.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters returns all filters in tab order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Label returns the tab label.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next returns the following filter, wrapping around.
func (f Filter) Next() Filter {
	return (f + 1) % Filter(len(Filters()))
}

// Prev returns the preceding filter, wrapping around.
func (f Filter) Prev() Filter {
	n := Filter(len(Filters()))
	return (f - 1 + n) % n
}

// ParseFilter parses "all", "active" or "completed".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

// Match reports whether t is shown under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Visible returns the tasks shown under f, in collection order.
func Visible(tasks []Task, f Filter) []Task {
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// Summary counts tasks for the status readout.
type Summary struct {
	Total     int
	Completed int
}

// Summarize counts tasks and completed tasks.
func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

// TotalText renders "Total: N task(s)".
func (s Summary) TotalText() string {
	noun := "tasks"
	if s.Total == 1 {
		noun = "task"
	}
	return fmt.Sprintf("Total: %d %s", s.Total, noun)
}

// CompletedText renders "Completed: M".
func (s Summary) CompletedText() string {
	return fmt.Sprintf("Completed: %d", s.Completed)
}
