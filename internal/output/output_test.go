//nolint:testpackage // Tests require internal access for thorough testing
package output

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/abatilo/tasks/internal/task"
)

func sampleView() []task.Entry {
	return []task.Entry{
		{Task: task.Task{ID: 2, Title: "Pay rent", DueDate: "2024-01-01", Priority: task.PriorityHigh}, Overdue: true},
		{Task: task.Task{ID: 3, Title: "Read book", Priority: task.PriorityLow}},
		{Task: task.Task{ID: 1, Title: "Buy milk", DueDate: "2023-12-01", Priority: task.PriorityMedium, Completed: true}},
	}
}

func TestHumanFormatView(t *testing.T) {
	color.NoColor = true
	f := NewHumanFormatter()

	out := f.FormatView(sampleView())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	tests := []struct {
		line     string
		contains []string
		excludes []string
	}{
		{lines[0], []string{"[ ]", "2", "High", "2024-01-01", "Pay rent", "(overdue)"}, nil},
		{lines[1], []string{"[ ]", "3", "Low", " - ", "Read book"}, []string{"(overdue)"}},
		{lines[2], []string{"[X]", "1", "Buy milk"}, []string{"(overdue)"}},
	}

	for i, tt := range tests {
		for _, want := range tt.contains {
			if !strings.Contains(tt.line, want) {
				t.Errorf("line %d = %q, missing %q", i, tt.line, want)
			}
		}
		for _, bad := range tt.excludes {
			if strings.Contains(tt.line, bad) {
				t.Errorf("line %d = %q, should not contain %q", i, tt.line, bad)
			}
		}
	}
}

func TestHumanFormatViewEmpty(t *testing.T) {
	if got := NewHumanFormatter().FormatView(nil); got != "No tasks found.\n" {
		t.Errorf("FormatView(nil) = %q", got)
	}
}

func TestHumanFormatTaskStatus(t *testing.T) {
	color.NoColor = true
	f := NewHumanFormatter()

	tests := []struct {
		name  string
		entry task.Entry
		want  string
	}{
		{"pending", task.Entry{Task: task.Task{ID: 1, Title: "a", Priority: task.PriorityLow}}, "Status:   Pending"},
		{"overdue", task.Entry{Task: task.Task{ID: 1, Title: "a", Priority: task.PriorityLow}, Overdue: true}, "Status:   Overdue"},
		{"completed", task.Entry{Task: task.Task{ID: 1, Title: "a", Priority: task.PriorityLow, Completed: true}}, "Status:   Completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatTask(tt.entry); !strings.Contains(got, tt.want) {
				t.Errorf("FormatTask() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestJSONFormatView(t *testing.T) {
	out := NewJSONFormatter().FormatView(sampleView())

	var got []TaskJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 3 {
		t.Fatalf("got %d tasks, want 3", len(got))
	}
	if got[0].ID != 2 || !got[0].Overdue {
		t.Errorf("first = %+v, want id 2 overdue", got[0])
	}
	if got[1].DueDate != "" {
		t.Errorf("absent due date = %q, want empty", got[1].DueDate)
	}
	if !strings.Contains(out, `"overdue": false`) {
		t.Error("overdue should always be present")
	}
}

func TestJSONFormatViewEmpty(t *testing.T) {
	if got := NewJSONFormatter().FormatView(nil); got != "[]\n" {
		t.Errorf("FormatView(nil) = %q, want %q", got, "[]\n")
	}
}

func TestFormatError(t *testing.T) {
	err := errors.New("title required")

	if got := NewHumanFormatter().FormatError(err); got != "Error: title required\n" {
		t.Errorf("human FormatError = %q", got)
	}
	if got := NewJSONFormatter().FormatError(err); got != "{\n  \"error\": \"title required\"\n}\n" {
		t.Errorf("json FormatError = %q", got)
	}
}
