package service

import (
	"context"
	"time"

	"muslimapp/internal/domain/entity"
)

// PrayerTimeProvider computes the five daily prayer times for a location.
type PrayerTimeProvider interface {
	// ComputePrayerTimes returns local HH:MM clocks for the civil date in timezone.
	// Coordinates outside ±90/±180 fail with errors.ErrInvalidLocation.
	ComputePrayerTimes(ctx context.Context, lat, lon float64, date time.Time, timezone string) (*entity.PrayerTimes, error)
}

// PrayerTimeCache is a PrayerTimeProvider that keeps results across calls.
type PrayerTimeCache interface {
	PrayerTimeProvider

	// PruneBefore drops entries for civil dates strictly before date (YYYY-MM-DD)
	// and returns how many were removed.
	PruneBefore(date string) int
}
