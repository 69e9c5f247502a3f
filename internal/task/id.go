package task

// NextID returns 1 for an empty list, otherwise one more than the highest ID.
// Deleted IDs are only reused when they exceed the remaining maximum.
func NextID(tasks []Task) int {
	maxID := 0
	for _, t := range tasks {
		maxID = max(maxID, t.ID)
	}
	return maxID + 1
}
