package output

import (
	"encoding/json"

	"github.com/abatilo/tasks/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// TaskJSON is the JSON representation of a task in a view.
type TaskJSON struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	DueDate   string `json:"due_date,omitempty"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	Overdue   bool   `json:"overdue"`
}

// ToTaskJSON converts a view entry to its JSON representation.
func ToTaskJSON(e task.Entry) TaskJSON {
	return TaskJSON{
		ID:        e.ID,
		Title:     e.Title,
		DueDate:   e.DueDate,
		Priority:  string(e.Priority),
		Completed: e.Completed,
		Overdue:   e.Overdue,
	}
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(e task.Entry) string {
	return marshalJSON(ToTaskJSON(e))
}

// FormatView formats the ordered task list as JSON.
func (f *JSONFormatter) FormatView(entries []task.Entry) string {
	jsonTasks := make([]TaskJSON, len(entries))
	for i, e := range entries {
		jsonTasks[i] = ToTaskJSON(e)
	}
	return marshalJSON(jsonTasks)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
