package usecase

import (
	"context"
	"time"

	"muslimapp/internal/domain/entity"
)

// TickReport summarizes one scheduler tick.
type TickReport struct {
	Tick time.Time
	// LeaseLost is set when another replica owns the tick.
	LeaseLost     bool
	Devices       int
	FailedDevices int
	Due           int
	Published     int
	PublishFailed int
	Stale         int
	Duration      time.Duration
	// PrayerFailures counts devices whose prayer times were unavailable; their
	// Islamic-event reminders were still evaluated.
	PrayerFailures int
}

// SchedulerUsecase decides which reminders are due.
type SchedulerUsecase interface {
	// RunTick evaluates every active device at now and publishes due events.
	RunTick(ctx context.Context, now time.Time) (*TickReport, error)

	// PruneLedger deletes delivery records older than the retention window.
	PruneLedger(ctx context.Context, now time.Time) (int64, error)

	// PrunePrayerTimes drops cached prayer times dated before the catch-up window
	// and returns how many were removed.
	PrunePrayerTimes(now time.Time) int
}

// DispatchUsecase turns due events into push notifications.
type DispatchUsecase interface {
	// Dispatch sends event at most once and returns the resulting ledger record.
	// Malformed events fail with a validation error; any other error means a
	// later attempt may succeed.
	Dispatch(ctx context.Context, event *entity.DueEvent) (*entity.DeliveryRecord, error)
}
