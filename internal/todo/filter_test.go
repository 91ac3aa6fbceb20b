package todo

import "testing"

func sampleCollection() []Task {
	return []Task{
		{ID: 1, Text: "a", Priority: PriorityHigh, Category: CategoryWork},
		{ID: 2, Text: "b", Completed: true, Priority: PriorityMedium, Category: CategoryShopping},
		{ID: 3, Text: "c", Priority: PriorityLow, Category: CategoryHealth},
	}
}

func TestVisible(t *testing.T) {
	tasks := sampleCollection()

	tests := []struct {
		filter Filter
		want   []int64
	}{
		{FilterAll, []int64{1, 2, 3}},
		{FilterActive, []int64{1, 3}},
		{FilterCompleted, []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			got := Visible(tasks, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("Visible() returned %d tasks, want %d", len(got), len(tt.want))
			}
			for i, task := range got {
				if task.ID != tt.want[i] {
					t.Errorf("Visible()[%d].ID = %d, want %d", i, task.ID, tt.want[i])
				}
			}
		})
	}
}

func TestVisible_ActiveAndCompletedPartitionAll(t *testing.T) {
	tasks := sampleCollection()
	active := Visible(tasks, FilterActive)
	completed := Visible(tasks, FilterCompleted)

	if len(active)+len(completed) != len(Visible(tasks, FilterAll)) {
		t.Fatalf("active(%d) + completed(%d) != all(%d)", len(active), len(completed), len(tasks))
	}
	seen := make(map[int64]bool)
	for _, task := range append(active, completed...) {
		if seen[task.ID] {
			t.Errorf("task %d appears under both filters", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name          string
		tasks         []Task
		wantTotal     string
		wantCompleted string
	}{
		{"empty", nil, "Total: 0 tasks", "Completed: 0"},
		{"single", []Task{{ID: 1, Text: "x"}}, "Total: 1 task", "Completed: 0"},
		{"mixed", sampleCollection(), "Total: 3 tasks", "Completed: 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.tasks)
			if got := s.TotalText(); got != tt.wantTotal {
				t.Errorf("TotalText() = %q, want %q", got, tt.wantTotal)
			}
			if got := s.CompletedText(); got != tt.wantCompleted {
				t.Errorf("CompletedText() = %q, want %q", got, tt.wantCompleted)
			}
		})
	}
}

func TestFilterCycle(t *testing.T) {
	if FilterCompleted.Next() != FilterAll {
		t.Errorf("Completed.Next() = %v", FilterCompleted.Next())
	}
	if FilterAll.Prev() != FilterCompleted {
		t.Errorf("All.Prev() = %v", FilterAll.Prev())
	}
	if FilterActive.Next() != FilterCompleted {
		t.Errorf("Active.Next() = %v", FilterActive.Next())
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"All", FilterAll, false},
		{"active", FilterActive, false},
		{" completed ", FilterCompleted, false},
		{"done", FilterCompleted, false},
		{"pending", FilterAll, true},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilter(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
