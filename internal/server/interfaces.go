package server

import "context"

// Server is a transport server bound to a context lifecycle.
type Server interface {
	// Run serves until ctx is done, then shuts down gracefully. It returns
	// nil after a clean shutdown.
	Run(ctx context.Context) error
}
