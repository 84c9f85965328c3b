package impl

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/service"

	"golang.org/x/sync/singleflight"
)

type memoEntry struct {
	schedule *entity.PrayerSchedule
	err      error
}

// scheduleMemo collapses prayer time look-ups for devices sharing a location within
// one tick. It must not outlive the tick: devices move between ticks.
type scheduleMemo struct {
	provider service.PrayerTimeProvider
	group    singleflight.Group

	mu    sync.Mutex
	cache map[string]memoEntry
}

func newScheduleMemo(provider service.PrayerTimeProvider) *scheduleMemo {
	return &scheduleMemo{
		provider: provider,
		cache:    make(map[string]memoEntry),
	}
}

func memoKey(lat, lon float64, date string, loc *time.Location) string {
	return strings.Join([]string{
		strconv.FormatFloat(lat, 'f', 6, 64),
		strconv.FormatFloat(lon, 'f', 6, 64),
		date,
		loc.String(),
	}, "|")
}

// get returns the schedule of the civil date in loc. Failures are memoised too so a
// failing provider is asked once per key and tick.
func (m *scheduleMemo) get(ctx context.Context, lat, lon float64, date time.Time, loc *time.Location) (*entity.PrayerSchedule, error) {
	key := memoKey(lat, lon, date.Format(entity.DateLayout), loc)

	m.mu.Lock()
	entry, ok := m.cache[key]
	m.mu.Unlock()
	if ok {
		return entry.schedule, entry.err
	}

	v, _, _ := m.group.Do(key, func() (any, error) {
		m.mu.Lock()
		entry, ok := m.cache[key]
		m.mu.Unlock()
		if ok {
			return entry, nil
		}

		times, err := m.provider.ComputePrayerTimes(ctx, lat, lon, date, loc.String())
		if err != nil {
			entry.err = err
		} else {
			entry.schedule, entry.err = entity.NewPrayerSchedule(times, date, loc)
		}

		m.mu.Lock()
		m.cache[key] = entry
		m.mu.Unlock()

		return entry, nil
	})

	entry = v.(memoEntry)

	return entry.schedule, entry.err
}
