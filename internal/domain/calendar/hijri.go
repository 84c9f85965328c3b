// Package calendar converts Gregorian dates to the tabular Islamic calendar and
// looks up Islamic events by Hijri date.
package calendar

import (
	"fmt"
	"math"
	"time"

	"muslimapp/internal/domain/entity"
)

const (
	// Julian day of the Hijri epoch used by the Kuwaiti algorithm.
	hijriEpoch = 1948084
	// Days in a 30-year Hijri cycle.
	cycleDays = 10631.0
	// Mean Hijri year in days.
	meanYear = cycleDays / 30.0
	shift    = 8.01 / 60.0
)

var monthNames = [12]string{
	"Muharram",
	"Safar",
	"Rabiul Awal",
	"Rabiul Akhir",
	"Jumadil Awal",
	"Jumadil Akhir",
	"Rajab",
	"Syaban",
	"Ramadan",
	"Syawal",
	"Dzulqaidah",
	"Dzulhijjah",
}

// ToHijri converts the civil date of t (in t's own location) with the Kuwaiti algorithm.
// Dates before 1583 are outside the supported range.
func ToHijri(t time.Time) entity.HijriDate {
	jd := julianDay(t.Year(), int(t.Month()), t.Day())

	z := jd - hijriEpoch
	cyc := math.Floor(z / cycleDays)
	z -= cycleDays * cyc
	j := math.Floor((z - shift) / meanYear)
	year := 30*cyc + j
	z -= math.Floor(j*meanYear + shift)
	month := math.Floor((z + 28.5001) / 29.5)
	if month == 13 {
		month = 12
	}
	day := z - math.Floor(29.5001*month-29)

	return entity.HijriDate{
		Day:   int(day),
		Month: int(month) - 1,
		Year:  int(year),
	}
}

// julianDay returns the Julian Day Number of a civil date, honouring the
// October 1582 Gregorian cutover.
func julianDay(year, month, day int) float64 {
	y := float64(year)
	m := float64(month)
	d := float64(day)
	if m < 3 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	if y < 1583 {
		b = 0
	}
	if y == 1582 {
		if m > 10 {
			b = -10
		}
		if m == 10 {
			b = 0
			if d > 4 {
				b = -10
			}
		}
	}

	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524
}

// IslamicMonthName returns the month name for a 0-indexed month, or "" when out of range.
func IslamicMonthName(index int) string {
	if index < 0 || index >= len(monthNames) {
		return ""
	}

	return monthNames[index]
}

// Format renders a Hijri date as "9 Rabiul Awal 1448 H".
func Format(h entity.HijriDate) string {
	name := IslamicMonthName(h.Month)
	if name == "" {
		return h.String()
	}

	return fmt.Sprintf("%d %s %d H", h.Day, name, h.Year)
}
