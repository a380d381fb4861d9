// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Implementations are expected to return from Start promptly, spawning
// goroutines internally, and to block in Stop until in-flight work finishes.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing tied to ctx
//	}
//
//	func (w *MyWorker) Stop() {
//	    // wait for background processing to finish
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
