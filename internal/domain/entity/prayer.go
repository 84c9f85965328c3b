// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the layout of civil dates used across the ledger and the API.
const DateLayout = "2006-01-02"

// ClockLayout is the layout of local prayer times.
const ClockLayout = "15:04"

// PrayerTimes is the contract returned by a prayer time provider: five local HH:MM clocks.
type PrayerTimes struct {
	Date    string `json:"date"`
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// Clock returns the HH:MM value for the prayer.
func (t *PrayerTimes) Clock(name PrayerName) string {
	switch name {
	case PrayerFajr:
		return t.Fajr
	case PrayerDhuhr:
		return t.Dhuhr
	case PrayerAsr:
		return t.Asr
	case PrayerMaghrib:
		return t.Maghrib
	case PrayerIsha:
		return t.Isha
	default:
		return ""
	}
}

// PrayerInstant is one prayer resolved to an absolute instant.
type PrayerInstant struct {
	Name  PrayerName `json:"name"`
	Clock string     `json:"time"`
	At    time.Time  `json:"at"`
}

// PrayerSchedule holds the five prayer instants of one local date. It is derived on
// demand and never persisted.
type PrayerSchedule struct {
	Date     string          `json:"date"`
	Timezone string          `json:"timezone"`
	Prayers  []PrayerInstant `json:"prayers"`
}

// NewPrayerSchedule resolves provider clocks on the given civil date in loc.
func NewPrayerSchedule(times *PrayerTimes, date time.Time, loc *time.Location) (*PrayerSchedule, error) {
	year, month, day := date.Date()
	schedule := &PrayerSchedule{
		Date:     time.Date(year, month, day, 0, 0, 0, 0, loc).Format(DateLayout),
		Timezone: loc.String(),
		Prayers:  make([]PrayerInstant, 0, len(PrayerNames)),
	}

	for _, name := range PrayerNames {
		clock := times.Clock(name)
		parsed, err := time.Parse(ClockLayout, strings.TrimSpace(clock))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s time %q", name, clock)
		}

		schedule.Prayers = append(schedule.Prayers, PrayerInstant{
			Name:  name,
			Clock: parsed.Format(ClockLayout),
			At:    time.Date(year, month, day, parsed.Hour(), parsed.Minute(), 0, 0, loc),
		})
	}

	return schedule, nil
}

// Find returns the instant of the named prayer.
func (s *PrayerSchedule) Find(name PrayerName) (PrayerInstant, bool) {
	for _, p := range s.Prayers {
		if p.Name == name {
			return p, true
		}
	}

	return PrayerInstant{}, false
}

// CurrentAndNext treats the day as a circular sequence of five instants. Before Fajr the
// current prayer is the previous Isha and after Isha the next prayer is the following Fajr.
// tomorrow may be nil, in which case today's Fajr shifted by one day stands in.
func (s *PrayerSchedule) CurrentAndNext(now time.Time, tomorrow *PrayerSchedule) (current, next PrayerInstant) {
	count := len(s.Prayers)
	if count == 0 {
		return PrayerInstant{}, PrayerInstant{}
	}

	idx := -1
	for i, p := range s.Prayers {
		if !p.At.After(now) {
			idx = i
		}
	}

	switch {
	case idx < 0:
		last := s.Prayers[count-1]
		last.At = last.At.AddDate(0, 0, -1)

		return last, s.Prayers[0]
	case idx == count-1:
		if tomorrow != nil && len(tomorrow.Prayers) > 0 {
			return s.Prayers[idx], tomorrow.Prayers[0]
		}
		first := s.Prayers[0]
		first.At = first.At.AddDate(0, 0, 1)

		return s.Prayers[idx], first
	default:
		return s.Prayers[idx], s.Prayers[idx+1]
	}
}
