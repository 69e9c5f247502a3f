package output

import "github.com/abatilo/tasks/internal/task"

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(e task.Entry) string
	FormatView(entries []task.Entry) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
