package todo

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks a decoded collection: positive unique ids, non-empty text,
// known priority and category.
func Validate(tasks []Task) error {
	var errs []error
	seen := make(map[int64]bool, len(tasks))
	for i, t := range tasks {
		if t.ID <= 0 {
			errs = append(errs, fmt.Errorf("task %d: id must be positive, got %d", i, t.ID))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("task %d: duplicate id %d", i, t.ID))
		}
		seen[t.ID] = true

		if strings.TrimSpace(t.Text) == "" {
			errs = append(errs, fmt.Errorf("task %d: empty text", i))
		}
		if !t.Priority.Valid() {
			errs = append(errs, fmt.Errorf("task %d: unknown priority %q", i, t.Priority))
		}
		if !t.Category.Valid() {
			errs = append(errs, fmt.Errorf("task %d: unknown category %q", i, t.Category))
		}
	}
	return errors.Join(errs...)
}

// SampleTasks returns the demo tasks inserted on first start.
func SampleTasks(now time.Time) []Task {
	today := DateOf(now)
	due := func(days int) *Date {
		d := today.AddDays(days)
		return &d
	}
	return []Task{
		{ID: 1, Text: "Create project proposal", Priority: PriorityHigh, Category: CategoryWork, DueDate: due(1), CreatedAt: now},
		{ID: 2, Text: "Buy groceries for the week", Completed: true, Priority: PriorityMedium, Category: CategoryShopping, DueDate: due(2), CreatedAt: now},
		{ID: 3, Text: "Morning jog", Priority: PriorityLow, Category: CategoryHealth, DueDate: due(3), CreatedAt: now},
	}
}
