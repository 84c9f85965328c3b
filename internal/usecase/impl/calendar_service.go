package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/calendar"
	"muslimapp/internal/domain/entity"
	"muslimapp/internal/usecase"

	"go.uber.org/fx"
)

// estimateHorizonDays bounds the forward scan that maps Hijri dates back to civil dates.
// Two passes over the catalog reach at most two Hijri years ahead.
const estimateHorizonDays = 2 * 355

type calendarService struct {
	catalog *calendar.Catalog
	logger  *slog.Logger
}

// CalendarServiceParams holds dependencies for CalendarService, injected by Fx.
type CalendarServiceParams struct {
	fx.In

	Catalog *calendar.Catalog
	Logger  *slog.Logger
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(params CalendarServiceParams) usecase.CalendarUsecase {
	return &calendarService{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *calendarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

func (srv *calendarService) GetHijriDate(ctx context.Context, t time.Time) *usecase.HijriDateOutput {
	hijri := calendar.ToHijri(t)
	events := srv.catalog.EventsOnHijriDate(hijri)
	if events == nil {
		events = []entity.IslamicEvent{}
	}

	srv.log(ctx).Debug("Converted date", slog.String("gregorian", t.Format(entity.DateLayout)), slog.String("hijri", hijri.String()))

	return &usecase.HijriDateOutput{
		Gregorian: t.Format(entity.DateLayout),
		Hijri:     hijri,
		MonthName: calendar.IslamicMonthName(hijri.Month),
		Formatted: calendar.Format(hijri),
		Events:    events,
	}
}

func (srv *calendarService) ListEvents(_ context.Context) []entity.IslamicEvent {
	return srv.catalog.All()
}

func (srv *calendarService) UpcomingEvents(_ context.Context, now time.Time, limit int) []entity.UpcomingEvent {
	upcoming := srv.catalog.UpcomingEvents(calendar.ToHijri(now), limit)
	if len(upcoming) == 0 {
		return upcoming
	}

	civil := estimateGregorianDates(now)
	for i := range upcoming {
		upcoming[i].EstimatedGregorian = civil[upcoming[i].HijriDate()]
	}

	return upcoming
}

// estimateGregorianDates maps each Hijri date in the horizon to its first civil date.
func estimateGregorianDates(from time.Time) map[entity.HijriDate]string {
	year, month, day := from.Date()
	start := time.Date(year, month, day, 12, 0, 0, 0, from.Location())

	dates := make(map[entity.HijriDate]string, estimateHorizonDays)
	for offset := 0; offset <= estimateHorizonDays; offset++ {
		d := start.AddDate(0, 0, offset)
		h := calendar.ToHijri(d)
		if _, seen := dates[h]; !seen {
			dates[h] = d.Format(entity.DateLayout)
		}
	}

	return dates
}
