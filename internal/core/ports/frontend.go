package ports

import "context"

// Frontend is the presentation layer driving the task list store.
// Implementations own the goroutine on which the store is mutated.
type Frontend interface {
	// Start begins the session. Asynchronous front-ends return immediately.
	Start(ctx context.Context) error

	// Stop asks the session to end.
	Stop() error

	// Wait blocks until the session has ended.
	Wait() error
}
