package tasklist

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
)

// ClockNodeID is the unique identifier for the clock Graft node used to stamp task ids.
const ClockNodeID graft.ID = "engine.tasklist.clock"

func init() {
	graft.Register(graft.Node[clockwork.Clock]{
		ID:        ClockNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (clockwork.Clock, error) {
			return clockwork.NewRealClock(), nil
		},
	})
}
