package logic

// moveCursor moves the cursor by delta, clamped to the visible list.
func (h *Handler) moveCursor(delta int) {
	h.TaskCursor += delta
	h.clampCursor()
	h.ensureCursorVisible()
}

// moveCursorTo moves the cursor to pos.
func (h *Handler) moveCursorTo(pos int) {
	h.TaskCursor = pos
	h.clampCursor()
	h.ensureCursorVisible()
}

// moveCursorToEnd moves cursor to the last item.
func (h *Handler) moveCursorToEnd() {
	h.moveCursorTo(len(h.Visible) - 1)
}

func (h *Handler) clampCursor() {
	if h.TaskCursor >= len(h.Visible) {
		h.TaskCursor = len(h.Visible) - 1
	}
	if h.TaskCursor < 0 {
		h.TaskCursor = 0
	}
}

// ensureCursorVisible scrolls so the cursor row is on screen and no space
// is wasted below the last row.
func (h *Handler) ensureCursorVisible() {
	height := h.ListHeight()
	if h.TaskCursor < h.ScrollOffset {
		h.ScrollOffset = h.TaskCursor
	}
	if h.TaskCursor >= h.ScrollOffset+height {
		h.ScrollOffset = h.TaskCursor - height + 1
	}
	if maxOffset := len(h.Visible) - height; h.ScrollOffset > maxOffset {
		h.ScrollOffset = maxOffset
	}
	if h.ScrollOffset < 0 {
		h.ScrollOffset = 0
	}
}

// selectTask puts the cursor on the task with id if it is visible.
func (h *Handler) selectTask(id int64) {
	for i, t := range h.Visible {
		if t.ID == id {
			h.moveCursorTo(i)
			return
		}
	}
}
