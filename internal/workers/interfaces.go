// Package workers runs the long-lived background loops of the client.
//
// The central piece is Supervisor: a gate-driven, cancel-and-retry runner
// shared by slow sync and incremental sync. Workers groups several
// long-lived loops and runs them until the first one fails or the context
// ends.
package workers

import "context"

// Worker is a long-lived background loop. Run blocks until ctx is done or
// the loop fails.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to Worker.
type WorkerFunc func(ctx context.Context) error

// Run implements Worker.
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
