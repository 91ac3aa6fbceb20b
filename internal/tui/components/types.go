package components

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/todo-tui/internal/todo"
)

// Zone is a clickable region of a task row.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneHandle
	ZoneCheckbox
	ZoneText
	ZoneEdit
	ZoneDelete
)

func (z Zone) String() string {
	switch z {
	case ZoneHandle:
		return "handle"
	case ZoneCheckbox:
		return "checkbox"
	case ZoneText:
		return "text"
	case ZoneEdit:
		return "edit"
	case ZoneDelete:
		return "delete"
	}
	return "none"
}

// Row columns. A row reads
//
//	› [ ] text…  Medium Shopping Jan 2, 2006 ✎ ✗
//
// and is always exactly as wide as the list.
const (
	handleWidth   = 2 // cursor or drag marker
	checkboxWidth = 3
	prefixWidth   = handleWidth + checkboxWidth + 1
	actionsWidth  = 4 // " ✎ ✗"
	priorityWidth = 6
	categoryWidth = 8
	minTextWidth  = 12
)

// RowLayout holds the column widths of a task row.
type RowLayout struct {
	Width   int
	Text    int
	Due     int
	Compact bool // priority, category and due columns hidden
}

// LayoutFor computes the row layout for a list width and due date layout.
// Narrow lists drop the metadata columns to keep the text readable.
func LayoutFor(width int, dateLayout string) RowLayout {
	due := DueWidth(dateLayout)
	meta := 1 + priorityWidth + 1 + categoryWidth + 1 + due
	text := width - prefixWidth - meta - actionsWidth
	if text >= minTextWidth {
		return RowLayout{Width: width, Text: text, Due: due}
	}

	text = width - prefixWidth - actionsWidth
	if text < 1 {
		text = 1
	}
	return RowLayout{Width: width, Text: text, Compact: true}
}

// DueWidth is the widest due date layout can produce.
func DueWidth(layout string) int {
	widest := 0
	for m := time.January; m <= time.December; m++ {
		d := todo.Date{Year: 2000, Month: m, Day: 28}
		if w := runewidth.StringWidth(d.Format(layout)); w > widest {
			widest = w
		}
	}
	return widest
}

// ZoneAt returns the zone under column x of a row width columns wide.
func ZoneAt(x, width int) Zone {
	switch {
	case x < 0 || x >= width:
		return ZoneNone
	case x < handleWidth:
		return ZoneHandle
	case x < handleWidth+checkboxWidth:
		return ZoneCheckbox
	case x == width-3:
		return ZoneEdit
	case x == width-1:
		return ZoneDelete
	case x < width-actionsWidth:
		return ZoneText
	}
	return ZoneNone
}

// Truncate truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}
	return s
}
