package model

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether the priority is one of the three known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// MaxTaskDurationMin caps a single task at 24 hours.
const MaxTaskDurationMin = 1440

// Task is one user-entered task awaiting scheduling. Tasks have no
// identity beyond their position in the list; duplicates are permitted.
type Task struct {
	Name        string   `json:"name"`
	DurationMin int      `json:"duration_min"`
	Priority    Priority `json:"priority"`
}
