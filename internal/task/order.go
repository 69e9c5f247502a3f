package task

import (
	"cmp"
	"slices"
	"time"
)

// Entry is a task as presented, with its derived overdue flag.
type Entry struct {
	Task
	Overdue bool
}

// Order returns a sorted copy of tasks: incomplete before completed, then by
// due date ascending with missing dates last. Ties keep their input order.
func Order(tasks []Task, now time.Time) []Entry {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.sortKey(), b.sortKey())
	})

	entries := make([]Entry, len(sorted))
	for i, t := range sorted {
		entries[i] = Entry{Task: t, Overdue: t.IsOverdue(now)}
	}
	return entries
}
