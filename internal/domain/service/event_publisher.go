package service

import (
	"context"

	"muslimapp/internal/domain/entity"
)

// EventPublisher hands due events over to the dispatcher without waiting for delivery.
type EventPublisher interface {
	// PublishDueEvent enqueues a due event for asynchronous dispatch
	PublishDueEvent(ctx context.Context, event *entity.DueEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
