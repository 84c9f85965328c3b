package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/calendar"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/qibla"
	"muslimapp/internal/domain/service"
	"muslimapp/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type prayerService struct {
	provider        service.PrayerTimeProvider
	defaultTimezone string
	logger          *slog.Logger
}

// PrayerServiceParams holds dependencies for PrayerService, injected by Fx.
type PrayerServiceParams struct {
	fx.In

	Provider service.PrayerTimeProvider
	Config   *config.Config
	Logger   *slog.Logger
}

// NewPrayerService creates a new prayer service instance
func NewPrayerService(params PrayerServiceParams) usecase.PrayerUsecase {
	return &prayerService{
		provider:        params.Provider,
		defaultTimezone: params.Config.Registry.DefaultTimezone,
		logger:          params.Logger,
	}
}

func (srv *prayerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// GetPrayerToday returns today's schedule at the given location with the current and
// next prayer. After Isha the next prayer is tomorrow's Fajr.
func (srv *prayerService) GetPrayerToday(ctx context.Context, input *usecase.PrayerTodayInput) (*usecase.PrayerTodayOutput, error) {
	if err := qibla.Validate(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = srv.defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, domainerrors.NewValidationError("unknown timezone %q", tz)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(loc)

	today, err := srv.schedule(ctx, input.Latitude, input.Longitude, now, loc)
	if err != nil {
		return nil, err
	}

	var tomorrow *entity.PrayerSchedule
	if last := today.Prayers[len(today.Prayers)-1]; !now.Before(last.At) {
		tomorrow, err = srv.schedule(ctx, input.Latitude, input.Longitude, now.AddDate(0, 0, 1), loc)
		if err != nil {
			// Today's Fajr shifted by a day stands in.
			srv.log(ctx).Warn("Failed to fetch tomorrow's prayer times", slog.Any("error", err))
			tomorrow = nil
		}
	}

	current, next := today.CurrentAndNext(now, tomorrow)

	return &usecase.PrayerTodayOutput{
		Schedule: today,
		Current:  current,
		Next:     next,
		Hijri:    calendar.ToHijri(now),
	}, nil
}

func (srv *prayerService) schedule(ctx context.Context, lat, lon float64, date time.Time, loc *time.Location) (*entity.PrayerSchedule, error) {
	times, err := srv.provider.ComputePrayerTimes(ctx, lat, lon, date, loc.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute prayer times")
	}

	schedule, err := entity.NewPrayerSchedule(times, date, loc)
	if err != nil {
		return nil, domainerrors.ErrPrayerTimesUnavailable.WrapMessage(err.Error())
	}

	return schedule, nil
}

func (srv *prayerService) GetQibla(_ context.Context, lat, lon float64) (*usecase.QiblaOutput, error) {
	if err := qibla.Validate(lat, lon); err != nil {
		return nil, err
	}

	return &usecase.QiblaOutput{
		Latitude:   lat,
		Longitude:  lon,
		Bearing:    qibla.Bearing(lat, lon),
		DistanceKm: qibla.Distance(lat, lon) / 1000,
	}, nil
}
