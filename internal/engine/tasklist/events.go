package tasklist

import "go.trai.ch/planner/internal/core/domain"

// EventKind identifies the kind of state change.
type EventKind int

const (
	// EventTaskAdded is emitted after a task is appended.
	EventTaskAdded EventKind = iota + 1
	// EventTaskRemoved is emitted after a task is deleted.
	EventTaskRemoved
	// EventDraftChanged is emitted after a draft field changes through a setter.
	EventDraftChanged
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTaskAdded:
		return "task_added"
	case EventTaskRemoved:
		return "task_removed"
	case EventDraftChanged:
		return "draft_changed"
	default:
		return "unknown"
	}
}

// Event describes a state change of the store.
// Task is set for EventTaskAdded and EventTaskRemoved. Draft always holds the draft after the change.
type Event struct {
	Kind  EventKind
	Task  domain.Task
	Draft domain.Draft
}

// Listener receives store events.
type Listener func(Event)
