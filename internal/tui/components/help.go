package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

const helpKeyWidth = 18

// HelpModel renders the help view with keyboard and mouse shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
	viewport      viewport.Model
	ready         bool
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseHelpMsg{} }
		case "j", "down":
			h.viewport.LineDown(1)
		case "k", "up":
			h.viewport.LineUp(1)
		case "g", "home":
			h.viewport.GotoTop()
		case "G", "end":
			h.viewport.GotoBottom()
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("⌨  Keyboard & Mouse"))
	b.WriteString("\n")
	b.WriteString(h.columns())
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close • j/k: scroll")
	b.WriteString(lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer))

	if !h.ready {
		return b.String()
	}
	h.viewport.SetContent(b.String())
	return h.viewport.View()
}

// columns lays the sections out in two columns, or one when narrow.
func (h *HelpModel) columns() string {
	leftSections := map[string]bool{
		"Navigation": true,
		"Filters":    true,
		"General":    true,
	}

	colWidth := h.width / 2
	single := colWidth < helpKeyWidth+20
	if single {
		colWidth = h.width
	}
	if colWidth > 56 {
		colWidth = 56
	}
	descWidth := colWidth - helpKeyWidth - 4
	if descWidth < 10 {
		descWidth = 10
	}

	var left, right strings.Builder
	current := &left
	keyStyle := styles.HelpKey.Width(helpKeyWidth).Align(lipgloss.Right).PaddingRight(2)

	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		// Section header
		if desc == "" && key != "" {
			current = &right
			if single || leftSections[key] {
				current = &left
			}
			current.WriteString("\n" + styles.SectionHeader.Render(" "+key+" ") + "\n")
			continue
		}
		if key == "" && desc == "" {
			continue
		}

		descStr := styles.HelpDesc.Render(wordwrap.String(desc, descWidth))
		current.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), descStr) + "\n")
	}

	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	if single {
		return columnStyle.Render(left.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(left.String()),
		columnStyle.Render(right.String()),
	)
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
	if !h.ready {
		h.viewport = viewport.New(width, height)
		h.ready = true
		return
	}
	h.viewport.Width = width
	h.viewport.Height = height
}

// SetKeymap sets the help items as key/description pairs. A pair with an
// empty description starts a section.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
