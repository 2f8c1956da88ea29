package task

import "strings"

// IsValidRecord reports whether a stored task is well-formed enough to be projected.
func IsValidRecord(t Task) bool {
	return strings.TrimSpace(t.ID) != "" && strings.TrimSpace(t.Title) != ""
}

// FilterValid returns the valid tasks in input order and how many were dropped.
func FilterValid(tasks []Task) ([]Task, int) {
	valid := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if IsValidRecord(t) {
			valid = append(valid, t)
		}
	}
	return valid, len(tasks) - len(valid)
}
