package tasklist_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/engine/tasklist"
)

var epoch = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

func newStore(t *testing.T) (*tasklist.Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(epoch)
	return tasklist.New(clock), clock
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		time string
	}{
		{name: "plain", text: "Buy milk", time: "10:00 AM"},
		{name: "surrounding whitespace kept", text: "  Call mom ", time: " tonight"},
		{name: "free-form time", text: "Run", time: "whenever it stops raining"},
		{name: "unicode", text: "Écrire", time: "明日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := newStore(t)
			s.Add("first", "08:00")
			before := s.Len()

			s.Add(tt.text, tt.time)

			require.Equal(t, before+1, s.Len())
			last := s.Tasks()[s.Len()-1]
			assert.Equal(t, tt.text, last.Text)
			assert.Equal(t, tt.time, last.Time)
		})
	}
}

func TestStore_Add_RejectsBlankFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		time string
	}{
		{name: "empty text", text: "", time: "10:00"},
		{name: "empty time", text: "Buy milk", time: ""},
		{name: "both empty", text: "", time: ""},
		{name: "whitespace text", text: "   ", time: "10:00"},
		{name: "whitespace time", text: "Buy milk", time: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := newStore(t)
			s.Add("existing", "09:00")
			s.UpdateDraftText("kept text")
			s.UpdateDraftTime("kept time")

			s.Add(tt.text, tt.time)

			assert.Equal(t, 1, s.Len())
			assert.Equal(t, domain.Draft{Text: "kept text", Time: "kept time"}, s.Draft(),
				"a rejected add must not clear the draft")
		})
	}
}

func TestStore_Submit(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	assert.False(t, s.CanSubmit())

	s.UpdateDraftText("Buy milk")
	assert.False(t, s.CanSubmit(), "time still missing")

	s.UpdateDraftTime("10:00 AM")
	assert.True(t, s.CanSubmit())

	s.Submit()

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "Buy milk", s.Tasks()[0].Text)
	assert.Equal(t, "10:00 AM", s.Tasks()[0].Time)
	assert.Equal(t, domain.Draft{}, s.Draft(), "draft is cleared after a successful add")
	assert.False(t, s.CanSubmit())
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	t.Run("present id", func(t *testing.T) {
		t.Parallel()
		s, clock := newStore(t)
		s.Add("a", "1")
		clock.Advance(time.Millisecond)
		s.Add("b", "2")
		clock.Advance(time.Millisecond)
		s.Add("c", "3")

		target := s.Tasks()[1].ID
		s.Remove(target)

		assert.Equal(t, 2, s.Len())
		for _, task := range s.Tasks() {
			assert.NotEqual(t, target, task.ID)
		}
		assert.Equal(t, []string{"a", "c"}, texts(s.Tasks()), "order of the remaining tasks is preserved")
	})

	t.Run("absent id", func(t *testing.T) {
		t.Parallel()
		s, _ := newStore(t)
		s.Add("a", "1")
		before := s.Tasks()

		s.Remove(42)

		assert.Equal(t, before, s.Tasks())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		once, _ := newStore(t)
		twice, _ := newStore(t)
		for _, s := range []*tasklist.Store{once, twice} {
			s.Add("a", "1")
			s.Add("b", "2")
		}
		id := once.Tasks()[0].ID

		once.Remove(id)
		twice.Remove(id)
		twice.Remove(id)

		assert.Equal(t, once.Tasks(), twice.Tasks())
	})
}

func TestStore_IDsAreDistinct(t *testing.T) {
	t.Parallel()

	s, clock := newStore(t)
	const n = 200

	// The clock only moves every tenth add, so most ids collide on the raw timestamp.
	for i := range n {
		if i%10 == 0 {
			clock.Advance(time.Millisecond)
		}
		s.Add("task", "now")
	}

	seen := make(map[int64]struct{}, n)
	var prev int64
	for _, task := range s.Tasks() {
		_, dup := seen[task.ID]
		require.False(t, dup, "duplicate id %d", task.ID)
		seen[task.ID] = struct{}{}
		assert.Greater(t, task.ID, prev)
		prev = task.ID
	}
	assert.Len(t, seen, n)
}

func TestStore_IDIsCreationTimestamp(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	s.Add("a", "1")

	assert.Equal(t, epoch.UnixMilli(), s.Tasks()[0].ID)
}

func TestStore_IDsNotReusedAfterRemove(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	s.Add("a", "1")
	first := s.Tasks()[0].ID
	s.Remove(first)

	s.Add("b", "2")

	assert.NotEqual(t, first, s.Tasks()[0].ID)
}

func TestStore_TasksReturnsCopy(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	s.Add("a", "1")

	tasks := s.Tasks()
	tasks[0].Text = "mutated"

	assert.Equal(t, "a", s.Tasks()[0].Text)
}

func TestStore_Scenario(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)

	s.Add("Buy milk", "10:00 AM")
	require.Len(t, s.Tasks(), 1)
	assert.Equal(t, "Buy milk", s.Tasks()[0].Text)
	assert.Equal(t, "10:00 AM", s.Tasks()[0].Time)

	s.Add("", "2:00 PM")
	require.Len(t, s.Tasks(), 1)

	s.Remove(s.Tasks()[0].ID)
	assert.Empty(t, s.Tasks())
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	var events []tasklist.Event
	s.Subscribe(func(e tasklist.Event) {
		events = append(events, e)
	})
	s.Subscribe(nil)

	s.UpdateDraftText("Buy milk")
	s.UpdateDraftText("Buy milk") // unchanged, no event
	s.UpdateDraftTime("10:00 AM")
	s.Submit()
	s.Add(" ", "x") // rejected, no event
	id := s.Tasks()[0].ID
	s.Remove(id)
	s.Remove(id) // absent, no event

	kinds := make([]tasklist.EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []tasklist.EventKind{
		tasklist.EventDraftChanged,
		tasklist.EventDraftChanged,
		tasklist.EventTaskAdded,
		tasklist.EventTaskRemoved,
	}, kinds)

	assert.Equal(t, domain.Draft{Text: "Buy milk", Time: "10:00 AM"}, events[1].Draft)
	assert.Equal(t, "Buy milk", events[2].Task.Text)
	assert.Equal(t, domain.Draft{}, events[2].Draft)
	assert.Equal(t, id, events[3].Task.ID)
}

func TestStore_ListenerSeesNewState(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	var lenAtEvent int
	s.Subscribe(func(e tasklist.Event) {
		if e.Kind == tasklist.EventTaskAdded {
			lenAtEvent = s.Len()
		}
	})

	s.Add("a", "1")

	assert.Equal(t, 1, lenAtEvent)
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "task_added", tasklist.EventTaskAdded.String())
	assert.Equal(t, "task_removed", tasklist.EventTaskRemoved.String())
	assert.Equal(t, "draft_changed", tasklist.EventDraftChanged.String())
	assert.Equal(t, "unknown", tasklist.EventKind(0).String())
}

func texts(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Text)
	}
	return out
}
