// Package prayer implements service.PrayerTimeProvider on top of the Aladhan timings API.
package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"muslimapp/config"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/qibla"
	"muslimapp/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const aladhanDateLayout = "02-01-2006"

type aladhanProvider struct {
	baseURL    string
	method     int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// NewAladhanProvider creates a prayer time provider from configuration
func NewAladhanProvider(cfg *config.Config, logger *slog.Logger) service.PrayerTimeProvider {
	p := cfg.Prayer
	burst := int(p.RatePerSecond)
	if burst < 1 {
		burst = 1
	}

	return &aladhanProvider{
		baseURL: strings.TrimRight(p.BaseURL, "/"),
		method:  p.Method,
		httpClient: &http.Client{
			Timeout: p.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(p.RatePerSecond), burst),
		logger:  logger,
	}
}

// ComputePrayerTimes fetches the five daily prayer times for the civil date at the given location
func (p *aladhanProvider) ComputePrayerTimes(ctx context.Context, lat, lon float64, date time.Time, timezone string) (*entity.PrayerTimes, error) {
	if err := qibla.Validate(lat, lon); err != nil {
		return nil, err
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "prayer time rate limiter")
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("method", strconv.Itoa(p.method))
	if timezone != "" {
		query.Set("timezonestring", timezone)
	}
	endpoint := fmt.Sprintf("%s/v1/timings/%s?%s", p.baseURL, date.Format(aladhanDateLayout), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrPrayerTimesUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		p.logger.WarnContext(ctx, "Prayer time provider returned non-200",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, domainerrors.ErrPrayerTimesUnavailable.WrapMessage(fmt.Sprintf("status %d", resp.StatusCode))
	}

	var payload timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainerrors.ErrPrayerTimesUnavailable.WrapMessage("malformed timings response")
	}

	return toPrayerTimes(date, payload.Data.Timings)
}

func toPrayerTimes(date time.Time, timings map[string]string) (*entity.PrayerTimes, error) {
	times := &entity.PrayerTimes{Date: date.Format(entity.DateLayout)}
	fields := map[entity.PrayerName]*string{
		entity.PrayerFajr:    &times.Fajr,
		entity.PrayerDhuhr:   &times.Dhuhr,
		entity.PrayerAsr:     &times.Asr,
		entity.PrayerMaghrib: &times.Maghrib,
		entity.PrayerIsha:    &times.Isha,
	}

	for name, dst := range fields {
		clock, ok := timings[name.Title()]
		if !ok {
			return nil, domainerrors.ErrPrayerTimesUnavailable.WrapMessage("missing " + name.Title())
		}
		*dst = normalizeClock(clock)
	}

	return times, nil
}

// normalizeClock strips zone suffixes such as "04:31 (WIB)".
func normalizeClock(clock string) string {
	clock = strings.TrimSpace(clock)
	if idx := strings.IndexByte(clock, ' '); idx >= 0 {
		clock = clock[:idx]
	}

	return clock
}
