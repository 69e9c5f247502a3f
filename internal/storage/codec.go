package storage

import (
	"encoding/json"
	"fmt"

	"github.com/abatilo/tasks/internal/task"
)

// fileIndent matches the indentation of task files written by earlier versions.
const fileIndent = "    "

// EncodeTasks renders tasks as the on-disk JSON array.
func EncodeTasks(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", fileIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DecodeTasks parses a task file. Any record that does not fit the task
// shape rejects the whole file.
func DecodeTasks(data []byte) ([]task.Task, error) {
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &parseError{"invalid JSON: " + err.Error()}
	}
	if tasks == nil {
		// A literal null is not a task array.
		return nil, &parseError{"not a task array"}
	}

	seen := make(map[int]bool, len(tasks))
	for i, t := range tasks {
		switch {
		case t.ID < 1:
			return nil, &parseError{fmt.Sprintf("record %d: id must be positive", i)}
		case seen[t.ID]:
			return nil, &parseError{fmt.Sprintf("record %d: duplicate id %d", i, t.ID)}
		case t.Title == "":
			return nil, &parseError{fmt.Sprintf("record %d: missing title", i)}
		case !task.IsValidPriority(t.Priority):
			return nil, &parseError{fmt.Sprintf("record %d: invalid priority %q", i, t.Priority)}
		}
		seen[t.ID] = true
	}
	return tasks, nil
}

// parseError represents a parsing error.
type parseError struct {
	msg string
}

func (e *parseError) Error() string {
	return e.msg
}
