package ui

import (
	"strings"

	"github.com/hy4ri/todo-tui/internal/tui/components"
)

// oneLine flattens s to a single line no wider than width.
func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width < 1 {
		return ""
	}
	return components.Truncate(s, width)
}
