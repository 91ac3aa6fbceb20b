package state

// Row is the screen geometry of one rendered task row.
type Row struct {
	ID     int64
	Top    int
	Height int
}

// RowsFor lays out ids one line each, starting at top and skipping the
// first offset rows, clipped to height lines.
func RowsFor(ids []int64, top, offset, height int) []Row {
	rows := make([]Row, 0, len(ids))
	for i, id := range ids {
		line := i - offset
		if line < 0 || line >= height {
			continue
		}
		rows = append(rows, Row{ID: id, Top: top + line, Height: 1})
	}
	return rows
}

// RowAt returns the row covering screen line y.
func RowAt(rows []Row, y int) (Row, bool) {
	for _, r := range rows {
		if y >= r.Top && y < r.Top+r.Height {
			return r, true
		}
	}
	return Row{}, false
}

// DropTarget picks the row the dragged one should be inserted before:
// among rows other than draggedID whose vertical midpoint lies below y, the
// closest one. It returns false when y is below every midpoint, meaning
// the end of the list.
func DropTarget(rows []Row, draggedID int64, y int) (int64, bool) {
	var (
		best   int64
		found  bool
		bestOf float64
	)
	for _, r := range rows {
		if r.ID == draggedID {
			continue
		}
		offset := float64(y) - float64(r.Top) - float64(r.Height)/2
		if offset < 0 && (!found || offset > bestOf) {
			best, bestOf, found = r.ID, offset, true
		}
	}
	return best, found
}

// MoveBefore returns order with id moved immediately before target, or to
// the end when hasTarget is false.
func MoveBefore(order []int64, id, target int64, hasTarget bool) []int64 {
	out := make([]int64, 0, len(order))
	for _, x := range order {
		if x != id {
			out = append(out, x)
		}
	}
	if len(out) == len(order) {
		return append([]int64(nil), order...)
	}
	if !hasTarget {
		return append(out, id)
	}
	for i, x := range out {
		if x == target {
			out = append(out[:i], append([]int64{id}, out[i:]...)...)
			return out
		}
	}
	return append(out, id)
}

// MergeOrder places visible, a reordering of some ids of full, into the
// slots those ids occupy in full. Ids of full not in visible keep their
// positions.
func MergeOrder(full, visible []int64) []int64 {
	shown := make(map[int64]bool, len(visible))
	for _, id := range visible {
		shown[id] = true
	}

	merged := make([]int64, len(full))
	next := 0
	for i, id := range full {
		if shown[id] && next < len(visible) {
			merged[i] = visible[next]
			next++
			continue
		}
		merged[i] = id
	}
	return merged
}

// DragState tracks a press-and-drag reorder gesture.
type DragState struct {
	// TaskID is the row being dragged.
	TaskID int64
	// Order is the current visual order of the visible ids.
	Order []int64
	// Active is set on press and cleared on release.
	Active bool
	// Moved is set once a motion event changed Order.
	Moved bool
	// StartY is the line the press happened on.
	StartY int
}

// Start arms a drag of id from the visible order.
func (d *DragState) Start(id int64, order []int64, y int) {
	d.TaskID = id
	d.Order = append([]int64(nil), order...)
	d.Active = true
	d.Moved = false
	d.StartY = y
}

// Move repositions the dragged row for a pointer at line y over rows and
// reports whether the order changed.
func (d *DragState) Move(rows []Row, y int) bool {
	if !d.Active {
		return false
	}
	target, ok := DropTarget(rows, d.TaskID, y)
	next := MoveBefore(d.Order, d.TaskID, target, ok)
	if equalIDs(next, d.Order) {
		return false
	}
	d.Order = next
	d.Moved = true
	return true
}

// Stop ends the gesture and returns the final order, and whether any motion
// rearranged it.
func (d *DragState) Stop() ([]int64, bool) {
	order, moved := d.Order, d.Moved
	*d = DragState{}
	return order, moved
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
