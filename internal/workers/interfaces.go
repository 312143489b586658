// Package workers runs the background jobs of the catalog server.
// It defines the Worker interface and a Workers aggregate that starts every
// worker with a shared context and waits for them on shutdown.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Workers report problems through the
// logger and metrics; a failing iteration never stops the loop.
type Worker interface {
	Run(ctx context.Context)
}
