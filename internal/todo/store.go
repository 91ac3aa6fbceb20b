package todo

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Persister reads and writes the whole collection.
type Persister interface {
	Load() ([]Task, error)
	Save(tasks []Task) error
}

// slotChecker is implemented by persisters that can tell whether anything
// was ever written.
type slotChecker interface {
	Exists() (bool, error)
}

// corruptError is implemented by load errors that mean the stored data is
// unreadable rather than the store being unreachable.
type corruptError interface {
	Corrupt() bool
}

// Store is the in-memory, ordered task collection. Every successful mutation
// is persisted and announced to subscribers.
//
// Store is not safe for concurrent use; the UI owns it from one goroutine.
type Store struct {
	tasks       []Task
	persister   Persister
	logger      *log.Logger
	now         func() time.Time
	subscribers []func([]Task)
	lastID      int64
	err         error
	fresh       bool
	// readFailed is set while the last load could not reach the slot.
	// Saving then would replace data the store never saw.
	readFailed bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now, for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a store and loads the collection from p. Load failures
// never fail the caller: the store starts empty and Err reports the cause.
func NewStore(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    log.New(io.Discard),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reload()
	return s
}

// Reload replaces the in-memory collection with the persisted one.
func (s *Store) Reload() {
	s.fresh = false
	if checker, ok := s.persister.(slotChecker); ok {
		exists, err := checker.Exists()
		if err == nil && !exists {
			s.fresh = true
		}
	}

	tasks, err := s.persister.Load()
	s.readFailed = false
	if err != nil {
		var ce corruptError
		if errors.As(err, &ce) && ce.Corrupt() {
			s.logger.Warn("stored tasks are unreadable, starting empty", "err", err)
		} else {
			s.logger.Error("failed to load tasks, saving disabled until reload", "err", err)
			s.readFailed = true
		}
		tasks = nil
	}
	s.err = err
	s.tasks = append([]Task(nil), tasks...)

	s.lastID = 0
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	s.notify()
}

// Fresh reports whether the backing slot had never been written when the
// store was last loaded.
func (s *Store) Fresh() bool {
	return s.fresh
}

// SeedSamples inserts the demo tasks when the slot was never written.
// It reports whether anything was added.
func (s *Store) SeedSamples() bool {
	if !s.fresh || len(s.tasks) > 0 {
		return false
	}
	samples := SampleTasks(s.now())
	for _, t := range samples {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	s.tasks = samples
	s.fresh = false
	s.commit()
	return true
}

// Subscribe registers fn to run after every change with a snapshot of the
// collection.
func (s *Store) Subscribe(fn func([]Task)) {
	s.subscribers = append(s.subscribers, fn)
}

// Err returns the last load or save error, or nil after a successful save.
func (s *Store) Err() error {
	return s.err
}

// Tasks returns a copy of the collection in display order.
func (s *Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with id.
func (s *Store) Get(id int64) (Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Summary counts the whole collection, independent of any filter.
func (s *Store) Summary() Summary {
	return Summarize(s.tasks)
}

// Add appends a new open task. It rejects text that trims to empty and
// unknown priority or category values.
func (s *Store) Add(text string, priority Priority, category Category, due *Date) (Task, bool) {
	text = CleanText(text)
	if text == "" || !priority.Valid() || !category.Valid() {
		return Task{}, false
	}

	now := s.now()
	t := Task{
		ID:        s.nextID(now),
		Text:      text,
		Priority:  priority,
		Category:  category,
		DueDate:   copyDate(due),
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}
	s.tasks = append(s.tasks, t)
	s.commit()
	return t, true
}

// ToggleCompleted flips the completed flag.
func (s *Store) ToggleCompleted(id int64) bool {
	return s.mutate(id, func(t *Task) {
		t.Completed = !t.Completed
	})
}

// EditText replaces the text with the cleaned newText.
func (s *Store) EditText(id int64, newText string) bool {
	newText = CleanText(newText)
	if newText == "" {
		return false
	}
	return s.mutate(id, func(t *Task) {
		t.Text = newText
	})
}

// SetPriority replaces the priority.
func (s *Store) SetPriority(id int64, p Priority) bool {
	if !p.Valid() {
		return false
	}
	return s.mutate(id, func(t *Task) {
		t.Priority = p
	})
}

// SetCategory replaces the category.
func (s *Store) SetCategory(id int64, c Category) bool {
	if !c.Valid() {
		return false
	}
	return s.mutate(id, func(t *Task) {
		t.Category = c
	})
}

// SetDueDate replaces the due date; nil clears it.
func (s *Store) SetDueDate(id int64, due *Date) bool {
	return s.mutate(id, func(t *Task) {
		t.DueDate = copyDate(due)
	})
}

// Update commits every field of e at once. Nothing changes when e.Text
// trims to empty or e carries an unknown priority or category.
func (s *Store) Update(id int64, e Edit) bool {
	text := CleanText(e.Text)
	if text == "" || !e.Priority.Valid() || !e.Category.Valid() {
		return false
	}
	return s.mutate(id, func(t *Task) {
		t.Text = text
		t.Priority = e.Priority
		t.Category = e.Category
		t.DueDate = copyDate(e.DueDate)
	})
}

// Delete removes the task permanently.
func (s *Store) Delete(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.commit()
	return true
}

// ClearCompleted deletes every completed task and returns how many went.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed > 0 {
		s.commit()
	}
	return removed
}

// Reorder arranges the collection by ids. Unknown and repeated ids are
// ignored; tasks missing from ids keep their relative order after the
// listed ones. It reports whether the order changed.
func (s *Store) Reorder(ids []int64) bool {
	byID := make(map[int64]int, len(s.tasks))
	for i, t := range s.tasks {
		byID[t.ID] = i
	}

	placed := make(map[int64]bool, len(s.tasks))
	ordered := make([]Task, 0, len(s.tasks))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		placed[id] = true
		ordered = append(ordered, s.tasks[i])
	}
	for _, t := range s.tasks {
		if !placed[t.ID] {
			ordered = append(ordered, t)
		}
	}

	changed := false
	for i := range ordered {
		if ordered[i].ID != s.tasks[i].ID {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}
	s.tasks = ordered
	s.commit()
	return true
}

// IDs returns the task ids in collection order.
func (s *Store) IDs() []int64 {
	ids := make([]int64, len(s.tasks))
	for i, t := range s.tasks {
		ids[i] = t.ID
	}
	return ids
}

func (s *Store) mutate(id int64, fn func(*Task)) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&s.tasks[i])
	s.commit()
	return true
}

func (s *Store) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID uses the creation time in milliseconds, bumped past the largest id
// seen so ids stay unique when the clock repeats or steps back.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// commit persists the collection and notifies subscribers. A failed save
// keeps the in-memory state. After a failed load nothing is written and
// Err keeps the load error until Reload succeeds.
func (s *Store) commit() {
	if s.readFailed {
		s.logger.Warn("not saving tasks: storage was not readable", "count", len(s.tasks), "err", s.err)
		s.notify()
		return
	}
	if err := s.persister.Save(s.Tasks()); err != nil {
		s.logger.Error("failed to save tasks", "count", len(s.tasks), "err", err)
		s.err = err
	} else {
		s.err = nil
	}
	s.notify()
}

func (s *Store) notify() {
	if len(s.subscribers) == 0 {
		return
	}
	snapshot := s.Tasks()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

func copyDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
