// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/todo"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Priority colors: high=red, medium=orange, low=blue
var (
	PriorityHighColor   = lipgloss.Color("#D0473D")
	PriorityMediumColor = lipgloss.Color("#EA8811")
	PriorityLowColor    = lipgloss.Color("#296FDF")
)

// Category colors
var (
	CategoryWorkColor     = lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#66AAFF"}
	CategoryPersonalColor = lipgloss.AdaptiveColor{Light: "#8800AA", Dark: "#CC88FF"}
	CategoryShoppingColor = lipgloss.AdaptiveColor{Light: "#AA6600", Dark: "#FFBB66"}
	CategoryHealthColor   = lipgloss.AdaptiveColor{Light: "#008866", Dark: "#66DDAA"}
)

// Base styles
var (
	// Title is the style for section titles
	// NOTE: No margins - they break row hit-testing
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Task row styles. None of these add padding or borders: every row is
// exactly one line and its columns are hit-tested by the mouse handler.
var (
	// TaskText is the base style for a task's text
	TaskText = lipgloss.NewStyle()

	// TaskSelected is for the text of the row under the cursor
	TaskSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// TaskCompleted is for the text of completed tasks
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TaskDragging is for the row being dragged
	TaskDragging = lipgloss.NewStyle().
			Italic(true).
			Foreground(WarningColor)

	// TaskCursor is the cursor marker in front of the selected row
	TaskCursor = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	// TaskDue is for due date display
	TaskDue = lipgloss.NewStyle().
		Foreground(Subtle)

	// TaskDueOverdue is for overdue tasks
	TaskDueOverdue = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// TaskDueToday is for tasks due today
	TaskDueToday = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ActionEdit and ActionDelete are the clickable row icons
	ActionEdit = lipgloss.NewStyle().
			Foreground(Subtle)
	ActionDelete = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// EmptyState is the message shown when no task matches the filter
	EmptyState = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)

// Priority styles
var (
	TaskPriorityHigh   = lipgloss.NewStyle().Foreground(PriorityHighColor).Bold(true)
	TaskPriorityMedium = lipgloss.NewStyle().Foreground(PriorityMediumColor)
	TaskPriorityLow    = lipgloss.NewStyle().Foreground(PriorityLowColor)
)

// PriorityStyle returns the style for a task priority.
func PriorityStyle(p todo.Priority) lipgloss.Style {
	switch p {
	case todo.PriorityHigh:
		return TaskPriorityHigh
	case todo.PriorityLow:
		return TaskPriorityLow
	default:
		return TaskPriorityMedium
	}
}

// CategoryStyle returns the style for a task category.
func CategoryStyle(c todo.Category) lipgloss.Style {
	color := CategoryPersonalColor
	switch c {
	case todo.CategoryWork:
		color = CategoryWorkColor
	case todo.CategoryShopping:
		color = CategoryShoppingColor
	case todo.CategoryHealth:
		color = CategoryHealthColor
	}
	return lipgloss.NewStyle().Foreground(color)
}

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// Input is the style for text inputs
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for focused inputs
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	// OptionSelected is the chosen value of a selector field
	OptionSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight).
			Padding(0, 1)

	// Option is an unselected value of a selector field
	Option = lipgloss.NewStyle().
		Foreground(Subtle).
		Padding(0, 1)

	// Button is the form submit button
	Button = lipgloss.NewStyle().
		Foreground(Subtle).
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle)

	// ButtonFocused is the focused submit button
	ButtonFocused = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Foreground(Highlight)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)
)

// Section header style
var (
	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Subtle).
		Underline(true)
)

// Checkbox styles
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)

// Row icons
const (
	IconEdit   = "✎"
	IconDelete = "✗"
	IconCursor = "›"
	IconDrag   = "≡"
)

// Tab bar styles
var (
	// TabBar is the container for the tab bar
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	// Tab is for inactive tabs
	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	// TabActive is for the active tab
	TabActive = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)

