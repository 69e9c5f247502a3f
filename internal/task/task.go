package task

import (
	"strings"
	"time"
)

// DateLayout is the accepted due date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// noDueDate sorts tasks without a due date after every real date.
const noDueDate = "9999-99-99"

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Task represents a single to-do item.
type Task struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	DueDate   string   `json:"due_date"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

// IsValidPriority checks if a priority is one of the fixed levels.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority maps user input such as "high" or "HIGH" onto a Priority.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	default:
		return "", false
	}
}

// ParseDueDate parses a YYYY-MM-DD date in UTC.
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// IsOverdue reports whether the task is incomplete and its due date is
// strictly before the calendar date of now. Unparseable dates are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed || !t.HasDueDate() {
		return false
	}
	due, err := ParseDueDate(t.DueDate)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}

// sortKey returns the due date used for ordering.
func (t Task) sortKey() string {
	if !t.HasDueDate() {
		return noDueDate
	}
	return t.DueDate
}
