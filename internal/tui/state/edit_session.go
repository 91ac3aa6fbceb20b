package state

import "github.com/hy4ri/todo-tui/internal/todo"

// EditSession tracks the task open in the edit form. At most one task is
// open at a time.
type EditSession struct {
	taskID int64
	open   bool
}

// Open starts a session for t. It reports false, changing nothing, when a
// session is already open.
func (e *EditSession) Open(t todo.Task) bool {
	if e.open {
		return false
	}
	e.taskID = t.ID
	e.open = true
	return true
}

// IsOpen reports whether a session is open.
func (e *EditSession) IsOpen() bool {
	return e.open
}

// TaskID returns the id of the open task.
func (e *EditSession) TaskID() (int64, bool) {
	return e.taskID, e.open
}

// Save commits edit to the open task and closes the session. An edit the
// store rejects (empty text) leaves the session open and returns false. A
// task deleted while open closes the session without changes.
func (e *EditSession) Save(store *todo.Store, edit todo.Edit) bool {
	if !e.open {
		return false
	}
	if _, ok := store.Get(e.taskID); !ok {
		e.Cancel()
		return false
	}
	if !store.Update(e.taskID, edit) {
		return false
	}
	e.Cancel()
	return true
}

// Cancel closes the session, discarding edits.
func (e *EditSession) Cancel() {
	e.taskID = 0
	e.open = false
}
