package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/abatilo/tasks/internal/task"
)

// HumanFormatter formats output for human-readable terminal display.
// Overdue rows are highlighted in red and completed rows in green.
type HumanFormatter struct {
	overdue   *color.Color
	completed *color.Color
}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{
		overdue:   color.New(color.FgRed, color.Bold),
		completed: color.New(color.FgGreen),
	}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(e task.Entry) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%d] %s\n", e.ID, e.Title)
	fmt.Fprintf(&sb, "  Status:   %s\n", statusName(e))
	fmt.Fprintf(&sb, "  Priority: %s\n", e.Priority)
	if e.HasDueDate() {
		fmt.Fprintf(&sb, "  Due:      %s\n", e.DueDate)
	}

	return sb.String()
}

// FormatView formats the ordered task list, one line per task.
func (f *HumanFormatter) FormatView(entries []task.Entry) string {
	if len(entries) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(f.formatEntryLine(e))
	}
	return sb.String()
}

// formatEntryLine formats a single entry as a compact one-liner.
func (f *HumanFormatter) formatEntryLine(e task.Entry) string {
	due := e.DueDate
	if !e.HasDueDate() {
		due = "-"
	}
	line := fmt.Sprintf("%s %4d  %-6s  %-10s  %s", statusIcon(e.Completed), e.ID, e.Priority, due, e.Title)

	switch {
	case e.Overdue:
		return f.overdue.Sprint(line+" (overdue)") + "\n"
	case e.Completed:
		return f.completed.Sprint(line) + "\n"
	default:
		return line + "\n"
	}
}

func statusIcon(completed bool) string {
	if completed {
		return "[X]"
	}
	return "[ ]"
}

// statusName is the display state: Overdue is derived, never stored.
func statusName(e task.Entry) string {
	switch {
	case e.Completed:
		return "Completed"
	case e.Overdue:
		return "Overdue"
	default:
		return "Pending"
	}
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
