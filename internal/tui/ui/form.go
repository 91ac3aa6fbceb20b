package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderTaskForm renders the add/edit dialog.
func (r *Renderer) renderTaskForm() string {
	if r.TaskForm == nil {
		return styles.Dialog.Render("Form not initialized")
	}
	f := r.TaskForm

	title, button := "Add Task", "Add"
	if f.IsEdit() {
		title, button = "Edit Task", "Save"
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(title) + "\n")

	b.WriteString(fieldLabel("Task", f.FocusIndex == state.FormFieldText) + "\n")
	b.WriteString(inputBox(f.Text.View(), f.FocusIndex == state.FormFieldText) + "\n")

	b.WriteString(fieldLabel("Priority", f.FocusIndex == state.FormFieldPriority) + "\n")
	var priorities []string
	for _, p := range todo.Priorities() {
		priorities = append(priorities, option(p.Label(), p == f.Priority, styles.PriorityStyle(p)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, priorities...) + "\n\n")

	b.WriteString(fieldLabel("Category", f.FocusIndex == state.FormFieldCategory) + "\n")
	var categories []string
	for _, c := range todo.Categories() {
		categories = append(categories, option(c.Label(), c == f.Category, styles.CategoryStyle(c)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, categories...) + "\n\n")

	b.WriteString(fieldLabel("Due date", f.FocusIndex == state.FormFieldDue) + "\n")
	b.WriteString(inputBox(f.Due.View(), f.FocusIndex == state.FormFieldDue) + "\n")

	if f.FocusIndex == state.FormFieldSubmit {
		b.WriteString(styles.ButtonFocused.Render(button))
	} else {
		b.WriteString(styles.Button.Render(button))
	}
	b.WriteString("\n")

	if f.Err != "" {
		b.WriteString(styles.StatusBarError.UnsetBackground().Render(f.Err) + "\n")
	}

	b.WriteString("\n" + styles.HelpDesc.Render("Enter: save • Tab: next field • ←/→: change • Esc: cancel"))

	return styles.Dialog.Render(b.String())
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return styles.InputLabel.Foreground(styles.Highlight).Render(styles.IconCursor + " " + name)
	}
	return styles.InputLabel.Render("  " + name)
}

func inputBox(view string, focused bool) string {
	if focused {
		return styles.InputFocused.Render(view)
	}
	return styles.Input.Render(view)
}

// option renders one value of a selector field in its accent colour.
func option(label string, selected bool, accent lipgloss.Style) string {
	if selected {
		return styles.OptionSelected.Render(label)
	}
	return styles.Option.Foreground(accent.GetForeground()).Render(label)
}
