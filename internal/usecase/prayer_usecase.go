package usecase

import (
	"context"
	"time"

	"muslimapp/internal/domain/entity"
)

// PrayerTodayInput locates the caller for today's prayer times.
type PrayerTodayInput struct {
	Latitude  float64
	Longitude float64
	Timezone  string
	Now       time.Time
}

// PrayerTodayOutput holds today's schedule and the current and next prayer.
type PrayerTodayOutput struct {
	Schedule *entity.PrayerSchedule `json:"schedule"`
	Current  entity.PrayerInstant   `json:"current"`
	Next     entity.PrayerInstant   `json:"next"`
	Hijri    entity.HijriDate       `json:"hijri"`
}

// QiblaOutput is the direction and distance to the Kaaba.
type QiblaOutput struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Bearing    float64 `json:"bearing"`
	DistanceKm float64 `json:"distance_km"`
}

// PrayerUsecase serves prayer times and the qibla direction.
type PrayerUsecase interface {
	GetPrayerToday(ctx context.Context, input *PrayerTodayInput) (*PrayerTodayOutput, error)
	GetQibla(ctx context.Context, lat, lon float64) (*QiblaOutput, error)
}
