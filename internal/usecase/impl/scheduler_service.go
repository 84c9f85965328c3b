package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"muslimapp/config"
	"muslimapp/internal/domain/calendar"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/repository"
	"muslimapp/internal/domain/service"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultEventReminderOffset = 7 * time.Hour

// schedulerService implements the SchedulerUsecase interface.
type schedulerService struct {
	deviceRepo   repository.DeviceRepository
	deliveryRepo repository.DeliveryRepository
	provider     service.PrayerTimeProvider
	cache        service.PrayerTimeCache
	catalog      *calendar.Catalog
	publisher    service.EventPublisher
	lease        service.TickLease

	staleness     time.Duration
	catchUp       time.Duration
	retention     time.Duration
	claimLease    time.Duration
	workers       int
	pageSize      int
	eventReminder time.Duration
	fallbackLoc   *time.Location

	logger *slog.Logger
}

// SchedulerServiceParams holds dependencies for SchedulerService, injected by Fx.
type SchedulerServiceParams struct {
	fx.In

	DeviceRepo   repository.DeviceRepository
	DeliveryRepo repository.DeliveryRepository
	Provider     service.PrayerTimeProvider
	Cache        service.PrayerTimeCache `optional:"true"`
	Catalog      *calendar.Catalog
	Publisher    service.EventPublisher
	Lease        service.TickLease
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSchedulerService creates a new scheduler service instance
func NewSchedulerService(params SchedulerServiceParams) usecase.SchedulerUsecase {
	cfg := params.Config

	eventReminder, err := config.ParseClock(cfg.Scheduler.EventReminderTime)
	if err != nil {
		eventReminder = defaultEventReminderOffset
	}

	fallbackLoc, err := time.LoadLocation(cfg.Registry.DefaultTimezone)
	if err != nil {
		fallbackLoc = time.UTC
	}

	return &schedulerService{
		deviceRepo:    params.DeviceRepo,
		deliveryRepo:  params.DeliveryRepo,
		provider:      params.Provider,
		cache:         params.Cache,
		catalog:       params.Catalog,
		publisher:     params.Publisher,
		lease:         params.Lease,
		staleness:     cfg.Scheduler.Staleness,
		catchUp:       max(cfg.Scheduler.CatchUpWindow, cfg.Scheduler.Staleness),
		retention:     cfg.Scheduler.Retention,
		claimLease:    cfg.Dispatch.ClaimLease,
		workers:       max(cfg.Scheduler.Workers, 1),
		pageSize:      max(cfg.Scheduler.PageSize, 1),
		eventReminder: eventReminder,
		fallbackLoc:   fallbackLoc,
		logger:        params.Logger,
	}
}

// deviceResult is the outcome of evaluating one device. prayerErr is set when prayer
// reminders could not be evaluated; Islamic-event reminders are still in due.
type deviceResult struct {
	due       []*entity.DueEvent
	stale     int
	prayerErr error
}

// RunTick evaluates all active devices page by page and publishes what is due.
func (srv *schedulerService) RunTick(ctx context.Context, now time.Time) (*usecase.TickReport, error) {
	started := time.Now()
	tick := now.Truncate(time.Minute)
	report := &usecase.TickReport{Tick: tick}

	owned, err := srv.lease.Acquire(ctx, tick)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire tick lease")
	}
	if !owned {
		report.LeaseLost = true
		srv.logger.Debug("[Scheduler] Tick owned by another replica", slog.Time("tick", tick))

		return report, nil
	}

	memo := newScheduleMemo(srv.provider)
	after := uuid.Nil

	for {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		devices, err := srv.deviceRepo.ListActive(ctx, after, srv.pageSize)
		if err != nil {
			return report, errors.Wrap(err, "failed to list active devices")
		}
		if len(devices) == 0 {
			break
		}

		due := srv.evaluatePage(ctx, now, devices, memo, report)
		srv.publish(ctx, due, report)

		after = devices[len(devices)-1].ID
		if len(devices) < srv.pageSize {
			break
		}
	}

	report.Duration = time.Since(started)

	level := slog.LevelDebug
	if report.Due > 0 || report.Stale > 0 || report.FailedDevices > 0 || report.PrayerFailures > 0 {
		level = slog.LevelInfo
	}
	srv.logger.Log(ctx, level, "[Scheduler] Tick completed",
		slog.Time("tick", tick),
		slog.Int("devices", report.Devices),
		slog.Int("due", report.Due),
		slog.Int("published", report.Published),
		slog.Int("publishFailed", report.PublishFailed),
		slog.Int("stale", report.Stale),
		slog.Int("failedDevices", report.FailedDevices),
		slog.Int("prayerFailures", report.PrayerFailures),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

// evaluatePage computes the due events of one page of devices in a bounded pool.
// A failing device is logged and counted; it never aborts the page.
func (srv *schedulerService) evaluatePage(
	ctx context.Context,
	now time.Time,
	devices []*entity.Device,
	memo *scheduleMemo,
	report *usecase.TickReport,
) []*entity.DueEvent {
	var (
		mu  sync.Mutex
		due []*entity.DueEvent
		g   errgroup.Group
	)
	g.SetLimit(srv.workers)

	for _, device := range devices {
		g.Go(func() error {
			result, err := srv.evaluateDevice(ctx, now, device, memo)

			mu.Lock()
			defer mu.Unlock()

			report.Devices++
			if err != nil {
				report.FailedDevices++
				srv.logger.Warn("[Scheduler] Failed to evaluate device",
					slog.String("deviceID", device.ID.String()),
					slog.Any("error", err),
				)

				return nil
			}
			if result.prayerErr != nil {
				report.PrayerFailures++
				srv.logger.Warn("[Scheduler] Prayer times unavailable, evaluating events only",
					slog.String("deviceID", device.ID.String()),
					slog.Any("error", result.prayerErr),
				)
			}
			report.Stale += result.stale
			due = append(due, result.due...)

			return nil
		})
	}
	_ = g.Wait()

	sortDueEvents(due)
	report.Due += len(due)

	return due
}

func (srv *schedulerService) evaluateDevice(ctx context.Context, now time.Time, device *entity.Device, memo *scheduleMemo) (deviceResult, error) {
	var result deviceResult
	if !device.WantsNotifications() {
		return result, nil
	}

	candidates, prayerErr := srv.candidates(ctx, now, device, memo)
	result.prayerErr = prayerErr
	if len(candidates) == 0 {
		return result, nil
	}

	records, err := srv.deliveryRepo.FindRecords(ctx, device.ID, candidateDates(candidates))
	if err != nil {
		return result, errors.Wrap(err, "failed to load delivery records")
	}
	ledger := make(map[entity.DeliveryKey]*entity.DeliveryRecord, len(records))
	for _, record := range records {
		ledger[record.Key()] = record
	}

	leaseCutoff := now.Add(-srv.claimLease)
	for _, candidate := range candidates {
		record, seen := ledger[candidate.Key()]
		if seen && record.Blocks(leaseCutoff) {
			continue
		}

		if !candidate.IsStale(now) {
			candidate.RequestID = uuid.NewString()
			result.due = append(result.due, candidate)

			continue
		}

		// A failed attempt past its deadline keeps its outcome; nothing retries it.
		if seen && record.Outcome == entity.OutcomeFailed {
			continue
		}

		claimed, err := srv.skipStale(ctx, now, candidate, leaseCutoff)
		if err != nil {
			return result, err
		}
		if claimed {
			result.stale++
		}
	}

	return result, nil
}

func (srv *schedulerService) skipStale(ctx context.Context, now time.Time, event *entity.DueEvent, leaseCutoff time.Time) (bool, error) {
	staleErr := &domainerrors.StaleEventError{
		Kind:     string(event.Kind),
		Date:     event.Date,
		Deadline: event.Deadline,
		Now:      now,
	}

	record := event.NewRecord(entity.OutcomeSkippedStale, now)
	record.ErrorMessage = staleErr.Error()

	claimed, err := srv.deliveryRepo.ClaimRecord(ctx, record, leaseCutoff)
	if err != nil {
		return false, errors.Wrap(err, "failed to record stale event")
	}
	if claimed {
		srv.logger.Info("[Scheduler] Skipping stale event",
			slog.String("deviceID", event.DeviceID.String()),
			slog.Any("error", staleErr),
		)
	}

	return claimed, nil
}

// candidates lists every reminder of the device whose trigger instant has passed,
// over the local dates from now-catchUp up to now+lead. A prayer time failure only
// drops the prayer reminders; it is returned alongside the Islamic-event reminders.
func (srv *schedulerService) candidates(ctx context.Context, now time.Time, device *entity.Device, memo *scheduleMemo) ([]*entity.DueEvent, error) {
	prefs := device.Preferences
	loc := device.LoadLocation(srv.fallbackLoc)
	lead := time.Duration(prefs.NotifyBeforePrayer) * time.Minute
	wantPrayers := prefs.EnablePrayerNotifications && device.HasLocation()

	var (
		out       []*entity.DueEvent
		prayerErr error
	)
	for _, date := range localDates(now.Add(-srv.catchUp), now.Add(lead), loc) {
		if wantPrayers {
			events, err := srv.prayerCandidates(ctx, now, device, date, loc, memo)
			if err != nil && prayerErr == nil {
				prayerErr = err
			}
			out = append(out, events...)
		}

		if prefs.EnableEventNotifications {
			out = append(out, srv.eventCandidates(now, device, date, loc)...)
		}
	}

	return out, prayerErr
}

func (srv *schedulerService) prayerCandidates(
	ctx context.Context,
	now time.Time,
	device *entity.Device,
	date time.Time,
	loc *time.Location,
	memo *scheduleMemo,
) ([]*entity.DueEvent, error) {
	prefs := device.Preferences
	lead := time.Duration(prefs.NotifyBeforePrayer) * time.Minute
	dateStr := date.Format(entity.DateLayout)

	schedule, err := memo.get(ctx, device.Location.Latitude, device.Location.Longitude, date, loc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compute prayer schedule for %s", dateStr)
	}

	var out []*entity.DueEvent
	for _, prayer := range schedule.Prayers {
		if !prefs.EnabledPrayers.IsEnabled(prayer.Name) {
			continue
		}
		trigger := prayer.At.Add(-lead)
		event := srv.newDueEvent(device, entity.PrayerEventKind(prayer.Name), dateStr, trigger, trigger.Add(srv.staleness))
		event.Prayer = &entity.DuePrayer{
			Name:        prayer.Name,
			Clock:       prayer.Clock,
			LeadMinutes: prefs.NotifyBeforePrayer,
		}
		if srv.isCandidate(now, device, event) {
			out = append(out, event)
		}
	}

	return out, nil
}

// eventCandidates lists the Islamic-event reminders of one local date. They need no
// prayer times.
func (srv *schedulerService) eventCandidates(now time.Time, device *entity.Device, date time.Time, loc *time.Location) []*entity.DueEvent {
	dateStr := date.Format(entity.DateLayout)
	hijri := calendar.ToHijri(date)

	var out []*entity.DueEvent
	for _, islamicEvent := range srv.catalog.EventsOnHijriDate(hijri) {
		trigger := time.Date(date.Year(), date.Month(), date.Day(), 0, int(srv.eventReminder/time.Minute), 0, 0, loc)
		deadline := date.AddDate(0, 0, 1)
		event := srv.newDueEvent(device, entity.IslamicEventKind(islamicEvent.ID), dateStr, trigger, deadline)
		event.Event = &entity.DueIslamicEvent{
			ID:          islamicEvent.ID,
			Title:       islamicEvent.Title,
			Description: islamicEvent.Description,
			Hijri:       hijri,
			MonthName:   calendar.IslamicMonthName(hijri.Month),
		}
		if srv.isCandidate(now, device, event) {
			out = append(out, event)
		}
	}

	return out
}

// isCandidate drops reminders not yet triggered and those that expired before the
// device was registered.
func (srv *schedulerService) isCandidate(now time.Time, device *entity.Device, event *entity.DueEvent) bool {
	if event.TriggerAt.After(now) {
		return false
	}

	return device.CreatedAt.IsZero() || !event.Deadline.Before(device.CreatedAt)
}

func (srv *schedulerService) newDueEvent(device *entity.Device, kind entity.EventKind, date string, trigger, deadline time.Time) *entity.DueEvent {
	return &entity.DueEvent{
		DeviceID:  device.ID,
		Token:     device.Token,
		Kind:      kind,
		Date:      date,
		TriggerAt: trigger,
		Deadline:  deadline,
	}
}

func (srv *schedulerService) publish(ctx context.Context, due []*entity.DueEvent, report *usecase.TickReport) {
	for _, event := range due {
		if err := srv.publisher.PublishDueEvent(ctx, event); err != nil {
			report.PublishFailed++
			srv.logger.Warn("[Scheduler] Failed to publish due event",
				slog.String("deviceID", event.DeviceID.String()),
				slog.String("kind", string(event.Kind)),
				slog.String("date", event.Date),
				slog.Any("error", err),
			)

			continue
		}
		report.Published++
	}
}

// PruneLedger deletes delivery records dated before now minus the retention window.
func (srv *schedulerService) PruneLedger(ctx context.Context, now time.Time) (int64, error) {
	before := entity.RetentionCutoff(now, srv.retention)

	deleted, err := srv.deliveryRepo.PruneRecords(ctx, before)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune delivery records")
	}

	srv.logger.Info("[Scheduler] Pruned delivery ledger", slog.String("before", before), slog.Int64("deleted", deleted))

	return deleted, nil
}

// PrunePrayerTimes drops cached prayer times for dates no tick will scan again.
func (srv *schedulerService) PrunePrayerTimes(now time.Time) int {
	if srv.cache == nil {
		return 0
	}

	// A day of slack covers every timezone offset from UTC.
	before := now.Add(-srv.catchUp).UTC().AddDate(0, 0, -1).Format(entity.DateLayout)

	return srv.cache.PruneBefore(before)
}

// localDates returns local midnights of every civil date from from to to, inclusive.
func localDates(from, to time.Time, loc *time.Location) []time.Time {
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	last := time.Date(ty, tm, td, 0, 0, 0, 0, loc)

	var dates []time.Time
	for day := 0; ; day++ {
		date := time.Date(fy, fm, fd+day, 0, 0, 0, 0, loc)
		if date.After(last) {
			return dates
		}
		dates = append(dates, date)
	}
}

func candidateDates(events []*entity.DueEvent) []string {
	dates := make([]string, 0, 2)
	for _, event := range events {
		if !slices.Contains(dates, event.Date) {
			dates = append(dates, event.Date)
		}
	}

	return dates
}

// sortDueEvents orders by date, then canonical prayer order with Islamic events last.
func sortDueEvents(events []*entity.DueEvent) {
	rank := func(kind entity.EventKind) int {
		if prayer, ok := kind.Prayer(); ok {
			return prayer.Index()
		}

		return len(entity.PrayerNames)
	}

	slices.SortStableFunc(events, func(a, b *entity.DueEvent) int {
		return cmp.Or(
			cmp.Compare(a.Date, b.Date),
			cmp.Compare(rank(a.Kind), rank(b.Kind)),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.DeviceID.String(), b.DeviceID.String()),
		)
	})
}
