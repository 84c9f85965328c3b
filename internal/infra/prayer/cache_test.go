package prayer

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	mockSvc "muslimapp/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jakartaDate(t *testing.T, day int) time.Time {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	return time.Date(2025, time.March, day, 0, 0, 0, 0, loc)
}

func jakartaTimes(date string) *entity.PrayerTimes {
	return &entity.PrayerTimes{Date: date, Fajr: "04:31", Dhuhr: "11:51", Asr: "15:02", Maghrib: "17:54", Isha: "19:04"}
}

func TestTimesCache_ServesRepeatedLookups(t *testing.T) {
	provider := mockSvc.NewMockPrayerTimeProvider(t)
	cache := NewTimesCache(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	date := jakartaDate(t, 10)

	provider.EXPECT().ComputePrayerTimes(mock.Anything, -6.2, 106.8, date, "Asia/Jakarta").
		Return(jakartaTimes("2025-03-10"), nil).
		Once()

	for range 3 {
		times, err := cache.ComputePrayerTimes(ctx, -6.2, 106.8, date, "Asia/Jakarta")
		require.NoError(t, err)
		assert.Equal(t, "04:31", times.Fajr)
	}

	// Callers get their own copy.
	times, err := cache.ComputePrayerTimes(ctx, -6.2, 106.8, date, "Asia/Jakarta")
	require.NoError(t, err)
	times.Fajr = "00:00"
	again, err := cache.ComputePrayerTimes(ctx, -6.2, 106.8, date, "Asia/Jakarta")
	require.NoError(t, err)
	assert.Equal(t, "04:31", again.Fajr)
}

func TestTimesCache_KeysOnLocationDateAndTimezone(t *testing.T) {
	provider := mockSvc.NewMockPrayerTimeProvider(t)
	cache := NewTimesCache(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	provider.EXPECT().ComputePrayerTimes(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(jakartaTimes("2025-03-10"), nil).
		Times(4)

	_, err := cache.ComputePrayerTimes(ctx, -6.2, 106.8, jakartaDate(t, 10), "Asia/Jakarta")
	require.NoError(t, err)
	_, err = cache.ComputePrayerTimes(ctx, -6.9, 107.6, jakartaDate(t, 10), "Asia/Jakarta")
	require.NoError(t, err)
	_, err = cache.ComputePrayerTimes(ctx, -6.2, 106.8, jakartaDate(t, 11), "Asia/Jakarta")
	require.NoError(t, err)
	_, err = cache.ComputePrayerTimes(ctx, -6.2, 106.8, jakartaDate(t, 10), "Asia/Makassar")
	require.NoError(t, err)

	assert.Equal(t, 4, cache.Len())
}

func TestTimesCache_FailuresAreNotCached(t *testing.T) {
	provider := mockSvc.NewMockPrayerTimeProvider(t)
	cache := NewTimesCache(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	date := jakartaDate(t, 10)

	provider.EXPECT().ComputePrayerTimes(mock.Anything, 51.5, -0.1, date, "Europe/London").
		Return(nil, domainerrors.ErrPrayerTimesUnavailable).
		Once()
	provider.EXPECT().ComputePrayerTimes(mock.Anything, 51.5, -0.1, date, "Europe/London").
		Return(jakartaTimes("2025-03-10"), nil).
		Once()

	_, err := cache.ComputePrayerTimes(ctx, 51.5, -0.1, date, "Europe/London")
	require.ErrorIs(t, err, domainerrors.ErrPrayerTimesUnavailable)
	assert.Zero(t, cache.Len())

	_, err = cache.ComputePrayerTimes(ctx, 51.5, -0.1, date, "Europe/London")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
}

func TestTimesCache_PruneBefore(t *testing.T) {
	provider := mockSvc.NewMockPrayerTimeProvider(t)
	cache := NewTimesCache(provider, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	provider.EXPECT().ComputePrayerTimes(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(jakartaTimes(""), nil)

	for _, day := range []int{8, 9, 10, 11} {
		_, err := cache.ComputePrayerTimes(ctx, -6.2, 106.8, jakartaDate(t, day), "Asia/Jakarta")
		require.NoError(t, err)
	}

	assert.Equal(t, 2, cache.PruneBefore("2025-03-10"))
	assert.Equal(t, 2, cache.Len())
	assert.Zero(t, cache.PruneBefore("2025-03-10"))
}
