package prayer

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/service"
)

type cacheKey struct {
	lat, lon string
	date     string
	timezone string
}

func newCacheKey(lat, lon float64, date time.Time, timezone string) cacheKey {
	return cacheKey{
		lat:      strconv.FormatFloat(lat, 'f', 6, 64),
		lon:      strconv.FormatFloat(lon, 'f', 6, 64),
		date:     date.Format(entity.DateLayout),
		timezone: timezone,
	}
}

// TimesCache keeps computed prayer times across scheduler ticks. Entries are keyed by
// location, civil date and timezone, so a device that moves simply misses the cache.
// Failures are not cached.
type TimesCache struct {
	provider service.PrayerTimeProvider
	logger   *slog.Logger

	mu      sync.RWMutex
	entries map[cacheKey]entity.PrayerTimes
}

// NewTimesCache wraps provider with a date-scoped cache.
func NewTimesCache(provider service.PrayerTimeProvider, logger *slog.Logger) *TimesCache {
	return &TimesCache{
		provider: provider,
		logger:   logger,
		entries:  make(map[cacheKey]entity.PrayerTimes),
	}
}

// ComputePrayerTimes serves from the cache, asking the wrapped provider on a miss.
func (c *TimesCache) ComputePrayerTimes(ctx context.Context, lat, lon float64, date time.Time, timezone string) (*entity.PrayerTimes, error) {
	key := newCacheKey(lat, lon, date, timezone)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return &cached, nil
	}

	times, err := c.provider.ComputePrayerTimes(ctx, lat, lon, date, timezone)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = *times
	c.mu.Unlock()

	out := *times

	return &out, nil
}

// PruneBefore drops entries dated strictly before date.
func (c *TimesCache) PruneBefore(date string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		// DateLayout sorts lexically.
		if key.date < date {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Debug("[PrayerCache] Pruned entries",
			slog.String("before", date),
			slog.Int("removed", removed),
			slog.Int("remaining", len(c.entries)),
		)
	}

	return removed
}

// Len returns the number of cached entries.
func (c *TimesCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
