package tasklist

import "github.com/jonboulle/clockwork"

// sequencer hands out creation-timestamp ids in milliseconds since the epoch.
// When the clock has not moved past the previous id, the previous id plus one is used,
// so ids are strictly increasing for the lifetime of the store.
type sequencer struct {
	clock clockwork.Clock
	last  int64
}

func (s *sequencer) next() int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
