package todo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-01-01", "2025-01-01", false},
		{"2024-10-27T00:00:00.000Z", "2024-10-27", false},
		{" 2024-02-29 ", "2024-02-29", false},
		{"2023-02-29", "", true},
		{"tomorrow", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got.String() != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDateAddDaysAndBefore(t *testing.T) {
	d := Date{Year: 2024, Month: time.December, Day: 31}
	next := d.AddDays(1)
	if next.String() != "2025-01-01" {
		t.Errorf("AddDays(1) = %s", next)
	}
	if !d.Before(next) || next.Before(d) || d.Before(d) {
		t.Error("Before() ordering is wrong")
	}
}

func TestTaskDueState(t *testing.T) {
	today := Date{Year: 2025, Month: time.May, Day: 10}
	yesterday := today.AddDays(-1)

	tests := []struct {
		name        string
		task        Task
		wantOverdue bool
		wantToday   bool
	}{
		{"no due", Task{}, false, false},
		{"due today", Task{DueDate: &today}, false, true},
		{"overdue", Task{DueDate: &yesterday}, true, false},
		{"completed past due", Task{DueDate: &yesterday, Completed: true}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(today); got != tt.wantOverdue {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.wantOverdue)
			}
			if got := tt.task.IsDueToday(today); got != tt.wantToday {
				t.Errorf("IsDueToday() = %v, want %v", got, tt.wantToday)
			}
		})
	}
}

func TestTaskJSONShape(t *testing.T) {
	due := Date{Year: 2025, Month: time.January, Day: 1}
	task := Task{ID: 7, Text: "Buy milk", Priority: PriorityHigh, Category: CategoryShopping, DueDate: &due}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{`"id":7`, `"dueDate":"2025-01-01"`, `"priority":"high"`, `"category":"shopping"`, `"completed":false`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}

	var noDue Task
	if err := json.Unmarshal([]byte(`{"id":1,"text":"x","priority":"low","category":"work","dueDate":null}`), &noDue); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if noDue.DueDate != nil {
		t.Errorf("null dueDate decoded as %v", noDue.DueDate)
	}
}

func TestParsePriorityAndCategory(t *testing.T) {
	if p, err := ParsePriority("HIGH"); err != nil || p != PriorityHigh {
		t.Errorf("ParsePriority(HIGH) = %v, %v", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("ParsePriority(urgent) should fail")
	}
	if c, err := ParseCategory(" Health"); err != nil || c != CategoryHealth {
		t.Errorf("ParseCategory(Health) = %v, %v", c, err)
	}
	if _, err := ParseCategory("errands"); err == nil {
		t.Error("ParseCategory(errands) should fail")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleCollection()); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}

	bad := []Task{
		{ID: 1, Text: "ok", Priority: PriorityLow, Category: CategoryWork},
		{ID: 1, Text: " ", Priority: "urgent", Category: "errands"},
		{ID: 0, Text: "x", Priority: PriorityLow, Category: CategoryWork},
	}
	err := Validate(bad)
	if err == nil {
		t.Fatal("Validate(bad) = nil")
	}
	for _, want := range []string{"duplicate id", "empty text", "unknown priority", "unknown category", "must be positive"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestSampleTasks(t *testing.T) {
	now := time.Date(2024, 10, 27, 8, 0, 0, 0, time.UTC)
	samples := SampleTasks(now)
	if err := Validate(samples); err != nil {
		t.Fatalf("samples invalid: %v", err)
	}
	if s := Summarize(samples); s.Total != 3 || s.Completed != 1 {
		t.Errorf("summary = %+v", s)
	}
	if samples[0].DueDate.String() != "2024-10-28" {
		t.Errorf("first sample due %s", samples[0].DueDate)
	}
}
