// Package tasklist implements the in-memory task list and its draft input.
package tasklist

import (
	"slices"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/planner/internal/core/domain"
)

// Store holds the ordered task list and the two draft fields.
//
// The store performs no locking. All mutations must happen on the single goroutine
// that owns the presentation layer.
type Store struct {
	tasks     []domain.Task
	draft     domain.Draft
	ids       *sequencer
	listeners []Listener
}

// New creates an empty store whose task ids are read from clock.
func New(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		ids: &sequencer{clock: clock},
	}
}

// Tasks returns a copy of the task list in display order.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Draft returns the pending input.
func (s *Store) Draft() domain.Draft {
	return s.draft
}

// CanSubmit reports whether Submit would create a task.
func (s *Store) CanSubmit() bool {
	return s.draft.Valid()
}

// UpdateDraftText replaces the pending task text. No validation happens here.
func (s *Store) UpdateDraftText(value string) {
	if s.draft.Text == value {
		return
	}
	s.draft.Text = value
	s.emit(Event{Kind: EventDraftChanged, Draft: s.draft})
}

// UpdateDraftTime replaces the pending task time. No validation happens here.
func (s *Store) UpdateDraftTime(value string) {
	if s.draft.Time == value {
		return
	}
	s.draft.Time = value
	s.emit(Event{Kind: EventDraftChanged, Draft: s.draft})
}

// Submit adds a task from the current draft.
func (s *Store) Submit() {
	s.Add(s.draft.Text, s.draft.Time)
}

// Add appends a task carrying text and time verbatim and clears the draft.
// If either value is blank after trimming, Add does nothing.
func (s *Store) Add(text, time string) {
	if !(domain.Draft{Text: text, Time: time}).Valid() {
		return
	}

	task := domain.Task{
		ID:   s.ids.next(),
		Text: text,
		Time: time,
	}
	s.tasks = append(s.tasks, task)
	s.draft = domain.Draft{}

	s.emit(Event{Kind: EventTaskAdded, Task: task, Draft: s.draft})
}

// Remove deletes the task with the given id. Unknown ids are ignored.
func (s *Store) Remove(id int64) {
	idx := slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
	if idx < 0 {
		return
	}

	removed := s.tasks[idx]
	s.tasks = slices.Delete(s.tasks, idx, idx+1)

	s.emit(Event{Kind: EventTaskRemoved, Task: removed, Draft: s.draft})
}

// Subscribe registers a listener called synchronously after every state change.
func (s *Store) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

func (s *Store) emit(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}
