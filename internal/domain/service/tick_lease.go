package service

import (
	"context"
	"time"
)

// TickLease ensures a scheduler tick is evaluated by a single replica.
type TickLease interface {
	// Acquire returns true when the caller owns the tick.
	Acquire(ctx context.Context, tick time.Time) (bool, error)
}
