package usecase

import (
	"context"
	"time"

	"muslimapp/internal/domain/entity"
)

// HijriDateOutput describes one civil date in the Hijri calendar.
type HijriDateOutput struct {
	Gregorian string                `json:"gregorian"`
	Hijri     entity.HijriDate      `json:"hijri"`
	MonthName string                `json:"month_name"`
	Formatted string                `json:"formatted"`
	Events    []entity.IslamicEvent `json:"events"`
}

// CalendarUsecase exposes the Hijri converter and the Islamic event catalog.
type CalendarUsecase interface {
	// GetHijriDate converts the civil date of t.
	GetHijriDate(ctx context.Context, t time.Time) *HijriDateOutput

	// ListEvents returns the whole catalog in (month, day) order.
	ListEvents(ctx context.Context) []entity.IslamicEvent

	// UpcomingEvents returns up to limit events from the civil date of now onwards,
	// each with an estimated Gregorian date.
	UpcomingEvents(ctx context.Context, now time.Time, limit int) []entity.UpcomingEvent
}
