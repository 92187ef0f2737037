// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers concurrently and tears them down together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must block until ctx is cancelled and then return promptly. Workers
// are started in their own goroutines by the [Workers] aggregate, so Run
// does not need to spawn anything itself.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
