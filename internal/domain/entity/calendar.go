// Package entity contains the core business objects of the project.
package entity

import "fmt"

// HijriDate is a date in the tabular Islamic calendar. Month is 0-indexed (0 = Muharram).
type HijriDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Before reports whether (month, day) of h comes before that of other, ignoring the year.
func (h HijriDate) Before(other HijriDate) bool {
	if h.Month != other.Month {
		return h.Month < other.Month
	}

	return h.Day < other.Day
}

// String formats the date as "day/month/year" with a 1-based month.
func (h HijriDate) String() string {
	return fmt.Sprintf("%d/%d/%d", h.Day, h.Month+1, h.Year)
}

// IslamicEvent is a read-only catalog entry keyed by Hijri month and day.
type IslamicEvent struct {
	ID          string `json:"id" mapstructure:"id"`
	HijriMonth  int    `json:"hijri_month" mapstructure:"hijriMonth"` // 0-indexed.
	HijriDay    int    `json:"hijri_day" mapstructure:"hijriDay"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
}

// UpcomingEvent is a catalog entry annotated with the Hijri year it falls in.
type UpcomingEvent struct {
	IslamicEvent

	Year               int    `json:"year"`
	EstimatedGregorian string `json:"estimated_gregorian,omitempty"`
}

// HijriDate returns the concrete Hijri date of the upcoming occurrence.
func (e UpcomingEvent) HijriDate() HijriDate {
	return HijriDate{Day: e.HijriDay, Month: e.HijriMonth, Year: e.Year}
}
