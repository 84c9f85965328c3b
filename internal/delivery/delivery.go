// Package delivery holds the process entry points: HTTP servers and the scheduler loop.
package delivery

import "context"

// Delivery is a long-running entry point started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
