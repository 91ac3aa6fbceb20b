// Package todo holds the task model, the in-memory task store and the view filter.
package todo

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Priority is the importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns all priorities, highest first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Label returns the display string for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return ""
}

// ParsePriority parses a priority name (case-insensitive).
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q (want high, medium or low)", s)
	}
	return p, nil
}

// Category groups tasks by area of life.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth:
		return true
	}
	return false
}

// Label returns the display string for the category.
func (c Category) Label() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryPersonal:
		return "Personal"
	case CategoryShopping:
		return "Shopping"
	case CategoryHealth:
		return "Health"
	}
	return ""
}

// ParseCategory parses a category name (case-insensitive).
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (want work, personal, shopping or health)", s)
	}
	return c, nil
}

// DateLayout is the persisted form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses "YYYY-MM-DD". A full RFC 3339 timestamp is accepted too
// and truncated to its date part, which is how older data stored due dates.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight of the day in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time(time.UTC).Before(other.Time(time.UTC))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String returns the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Format formats the date with a Go time layout.
func (d Date) Format(layout string) string {
	return d.Time(time.Local).Format(layout)
}

// MarshalText implements encoding.TextMarshaler (JSON and TOML).
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML keeps dates as plain strings instead of YAML timestamps.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Task is a single to-do item.
type Task struct {
	ID        int64     `json:"id" yaml:"id" toml:"id"`
	Text      string    `json:"text" yaml:"text" toml:"text"`
	Completed bool      `json:"completed" yaml:"completed" toml:"completed"`
	Priority  Priority  `json:"priority" yaml:"priority" toml:"priority"`
	Category  Category  `json:"category" yaml:"category" toml:"category"`
	DueDate   *Date     `json:"dueDate" yaml:"dueDate" toml:"dueDate,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
}

// HasDue reports whether the task has a due date.
func (t Task) HasDue() bool {
	return t.DueDate != nil
}

// IsOverdue reports whether an open task's due date is before today.
func (t Task) IsOverdue(today Date) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(today)
}

// IsDueToday reports whether the task is due on today.
func (t Task) IsDueToday(today Date) bool {
	return t.DueDate != nil && *t.DueDate == today
}

// DueDisplay formats the due date with layout, or "" when there is none.
func (t Task) DueDisplay(layout string) string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(layout)
}

// CleanText collapses every run of whitespace, newlines and tabs included,
// into one space and trims the ends. Task text always fits on one line.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Edit holds the fields the edit form commits together.
type Edit struct {
	Text     string
	Priority Priority
	Category Category
	DueDate  *Date
}
