package service

import (
	"context"

	"muslimapp/internal/domain/entity"
)

// Notifier is the push delivery capability. It is the only network egress of the
// dispatch pipeline.
type Notifier interface {
	// Send delivers one message to one push token. Failures are reported as
	// *errors.TransportError so callers can tell bad tokens from transient faults.
	Send(ctx context.Context, token string, message *entity.PushMessage) error
}
