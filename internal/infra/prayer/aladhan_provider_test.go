package prayer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"muslimapp/config"
	domainerrors "muslimapp/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timingsBody = `{
  "code": 200,
  "status": "OK",
  "data": {
    "timings": {
      "Fajr": "04:31 (WIB)",
      "Sunrise": "05:44 (WIB)",
      "Dhuhr": "11:51 (WIB)",
      "Asr": "15:02 (WIB)",
      "Maghrib": "17:54 (WIB)",
      "Isha": "19:04 (WIB)"
    }
  }
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *aladhanProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Prayer.BaseURL = server.URL + "/"
	cfg.Prayer.Method = 20
	cfg.Prayer.Timeout = 5 * time.Second
	cfg.Prayer.RatePerSecond = 100

	provider, ok := NewAladhanProvider(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*aladhanProvider)
	require.True(t, ok)

	return provider
}

func TestAladhanProvider_ComputePrayerTimes(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"latitude":       r.URL.Query().Get("latitude"),
			"longitude":      r.URL.Query().Get("longitude"),
			"method":         r.URL.Query().Get("method"),
			"timezonestring": r.URL.Query().Get("timezonestring"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(timingsBody))
	})

	date := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	times, err := provider.ComputePrayerTimes(context.Background(), -6.2088, 106.8456, date, "Asia/Jakarta")
	require.NoError(t, err)

	assert.Equal(t, "/v1/timings/11-03-2024", gotPath)
	assert.Equal(t, "-6.2088", gotQuery["latitude"])
	assert.Equal(t, "106.8456", gotQuery["longitude"])
	assert.Equal(t, "20", gotQuery["method"])
	assert.Equal(t, "Asia/Jakarta", gotQuery["timezonestring"])

	assert.Equal(t, "2024-03-11", times.Date)
	assert.Equal(t, "04:31", times.Fajr)
	assert.Equal(t, "11:51", times.Dhuhr)
	assert.Equal(t, "15:02", times.Asr)
	assert.Equal(t, "17:54", times.Maghrib)
	assert.Equal(t, "19:04", times.Isha)
}

func TestAladhanProvider_InvalidLocationSkipsNetwork(t *testing.T) {
	called := false
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	_, err := provider.ComputePrayerTimes(context.Background(), 91, 0, time.Now(), "UTC")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidLocation)
	assert.False(t, called)
}

func TestAladhanProvider_UpstreamFailure(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := provider.ComputePrayerTimes(context.Background(), 0, 0, time.Now(), "UTC")

	assert.ErrorIs(t, err, domainerrors.ErrPrayerTimesUnavailable)
}

func TestAladhanProvider_MissingTiming(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"04:31"}}}`))
	})

	_, err := provider.ComputePrayerTimes(context.Background(), 0, 0, time.Now(), "UTC")

	assert.ErrorIs(t, err, domainerrors.ErrPrayerTimesUnavailable)
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "04:31", normalizeClock(" 04:31 (WIB)"))
	assert.Equal(t, "19:04", normalizeClock("19:04"))
}
