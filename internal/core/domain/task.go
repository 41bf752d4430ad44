package domain

import "strings"

// Task is a single entry of the task list.
// Text and Time are stored exactly as entered; Time is free-form and never parsed.
type Task struct {
	ID   int64
	Text string
	Time string
}

// Draft holds the uncommitted input for the next task.
type Draft struct {
	Text string
	Time string
}

// Valid reports whether both fields are non-empty after trimming whitespace.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Text) != "" && strings.TrimSpace(d.Time) != ""
}
