package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/calendar"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/repository"
	"muslimapp/internal/domain/service"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// ledgerWriteTimeout bounds outcome writes, which outlive a cancelled dispatch context.
const ledgerWriteTimeout = 5 * time.Second

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	deviceRepo      repository.DeviceRepository
	deliveryRepo    repository.DeliveryRepository
	notifier        service.Notifier
	limiter         *rate.Limiter
	notifierTimeout time.Duration
	claimLease      time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	DeviceRepo   repository.DeviceRepository
	DeliveryRepo repository.DeliveryRepository
	Notifier     service.Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	cfg := params.Config.Dispatch

	return &dispatchService{
		deviceRepo:      params.DeviceRepo,
		deliveryRepo:    params.DeliveryRepo,
		notifier:        params.Notifier,
		limiter:         rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(cfg.Burst, 1)),
		notifierTimeout: cfg.NotifierTimeout,
		claimLease:      cfg.ClaimLease,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Dispatch claims the ledger key of event, sends the reminder and records the outcome.
func (srv *dispatchService) Dispatch(ctx context.Context, event *entity.DueEvent) (*entity.DeliveryRecord, error) {
	if err := validateDueEvent(event); err != nil {
		return nil, err
	}

	logger := srv.log(ctx).With(
		slog.String("deviceID", event.DeviceID.String()),
		slog.String("kind", string(event.Kind)),
		slog.String("date", event.Date),
	)

	now := srv.now()
	if event.IsStale(now) {
		return srv.skipStale(ctx, logger, event, now, now.Add(-srv.claimLease))
	}

	// Queue on the limiter before claiming so a backlog never eats into the lease.
	waitCtx, cancelWait := context.WithTimeout(ctx, event.Deadline.Sub(now))
	err := srv.limiter.Wait(waitCtx)
	cancelWait()
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}
		logger.Warn("[Dispatcher] Send backlog exceeds event deadline", slog.Any("error", err))

		return nil, errors.Wrap(err, "rate limiter")
	}

	now = srv.now()
	leaseCutoff := now.Add(-srv.claimLease)
	if event.IsStale(now) {
		return srv.skipStale(ctx, logger, event, now, leaseCutoff)
	}

	record := event.NewRecord(entity.OutcomePending, now)
	claimed, err := srv.deliveryRepo.ClaimRecord(ctx, record, leaseCutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim delivery record")
	}
	if !claimed {
		existing, err := srv.deliveryRepo.FindRecord(ctx, event.Key())
		if err != nil {
			return nil, errors.Wrap(err, "failed to load claimed delivery record")
		}
		logger.Debug("[Dispatcher] Delivery already claimed", slog.String("outcome", string(existing.Outcome)))

		return existing, nil
	}

	device, err := srv.deviceRepo.FindByID(ctx, event.DeviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		logger.Info("[Dispatcher] Device unregistered before delivery")

		return srv.complete(ctx, record, entity.OutcomeCancelled, "device unregistered")
	}
	if err != nil {
		_, _ = srv.complete(ctx, record, entity.OutcomeFailed, err.Error())

		return record, errors.Wrap(err, "failed to reload device")
	}
	if !device.Preferences.Allows(event.Kind) {
		logger.Info("[Dispatcher] Reminder disabled by preferences")

		return srv.complete(ctx, record, entity.OutcomeCancelled, "disabled by preferences")
	}

	// The send must finish while the claim is still ours.
	timeout := min(srv.notifierTimeout, srv.claimLease-srv.now().Sub(now))
	if timeout <= 0 {
		logger.Warn("[Dispatcher] Claim lease lapsed before send, record left pending")

		return record, errors.New("claim lease lapsed before send")
	}

	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	err = srv.notifier.Send(sendCtx, device.Token, buildPushMessage(event))
	cancel()

	switch {
	case err == nil:
		sentAt := srv.now()
		record.SentAt = &sentAt
		logger.Info("[Dispatcher] Reminder sent")

		return srv.complete(ctx, record, entity.OutcomeSent, "")

	case ctx.Err() != nil:
		// Shutdown: the claim lease expires and a later attempt takes over.
		logger.Warn("[Dispatcher] Send interrupted, record left pending", slog.Any("error", err))

		return record, errors.WithStack(ctx.Err())

	case domainerrors.IsPermanentTransportError(err):
		logger.Warn("[Dispatcher] Push token rejected, unregistering device", slog.Any("error", err))
		if _, cerr := srv.complete(ctx, record, entity.OutcomeFailed, err.Error()); cerr != nil {
			return record, cerr
		}
		srv.unregister(ctx, logger, device.Token)

		return record, nil

	default:
		logger.Warn("[Dispatcher] Delivery failed, eligible for retry", slog.Any("error", err))
		if _, cerr := srv.complete(ctx, record, entity.OutcomeFailed, err.Error()); cerr != nil {
			return record, cerr
		}

		return record, errors.Wrap(err, "transient delivery failure")
	}
}

// skipStale records a stale event unless the ledger already settled its key.
func (srv *dispatchService) skipStale(ctx context.Context, logger *slog.Logger, event *entity.DueEvent, now, leaseCutoff time.Time) (*entity.DeliveryRecord, error) {
	existing, err := srv.deliveryRepo.FindRecord(ctx, event.Key())
	switch {
	case err == nil && (existing.Blocks(leaseCutoff) || existing.Outcome == entity.OutcomeFailed):
		return existing, nil
	case err != nil && !errors.Is(err, repository.ErrRecordNotFound):
		return nil, errors.Wrap(err, "failed to load delivery record")
	}

	staleErr := &domainerrors.StaleEventError{Kind: string(event.Kind), Date: event.Date, Deadline: event.Deadline, Now: now}
	record := event.NewRecord(entity.OutcomeSkippedStale, now)
	record.ErrorMessage = staleErr.Error()

	claimed, err := srv.deliveryRepo.ClaimRecord(ctx, record, leaseCutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record stale event")
	}
	if !claimed {
		existing, err := srv.deliveryRepo.FindRecord(ctx, event.Key())
		if err != nil {
			return nil, errors.Wrap(err, "failed to load delivery record")
		}

		return existing, nil
	}

	logger.Info("[Dispatcher] Skipping stale event", slog.Any("error", staleErr))

	return record, nil
}

// complete persists the final outcome. The write is detached from ctx so that a
// cancelled caller still leaves an accurate ledger. When another dispatcher took
// the claim over, its record is returned instead.
func (srv *dispatchService) complete(ctx context.Context, record *entity.DeliveryRecord, outcome entity.DeliveryOutcome, message string) (*entity.DeliveryRecord, error) {
	record.Outcome = outcome
	record.ErrorMessage = message
	record.UpdatedAt = srv.now()

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ledgerWriteTimeout)
	defer cancel()

	err := srv.deliveryRepo.CompleteRecord(writeCtx, record)
	if errors.Is(err, repository.ErrClaimLost) {
		srv.log(ctx).Warn("[Dispatcher] Claim taken over before completion",
			slog.String("outcome", string(outcome)),
			slog.Int("attempts", record.Attempts),
		)

		current, ferr := srv.deliveryRepo.FindRecord(writeCtx, record.Key())
		if ferr != nil {
			return record, errors.Wrap(err, "failed to complete delivery record")
		}

		return current, nil
	}
	if err != nil {
		srv.log(ctx).Error("[Dispatcher] Failed to store delivery outcome",
			slog.String("outcome", string(outcome)),
			slog.Any("error", err),
		)

		return record, errors.Wrap(err, "failed to complete delivery record")
	}

	return record, nil
}

func (srv *dispatchService) unregister(ctx context.Context, logger *slog.Logger, token string) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ledgerWriteTimeout)
	defer cancel()

	err := srv.deviceRepo.DeleteByToken(writeCtx, token)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		logger.Error("[Dispatcher] Failed to unregister device", slog.Any("error", err))
	}
}

func validateDueEvent(event *entity.DueEvent) error {
	switch {
	case event == nil:
		return domainerrors.NewValidationError("due event is required")
	case event.DeviceID == uuid.Nil:
		return domainerrors.NewValidationError("due event has no device")
	case event.Date == "":
		return domainerrors.NewValidationError("due event has no date")
	case event.Deadline.IsZero():
		return domainerrors.NewValidationError("due event has no deadline")
	}

	if _, ok := event.Kind.Prayer(); ok {
		return nil
	}
	if _, ok := event.Kind.IslamicEventID(); ok {
		return nil
	}

	return domainerrors.NewValidationError("unknown event kind %q", event.Kind)
}

// buildPushMessage renders the title, body and data of a reminder.
func buildPushMessage(event *entity.DueEvent) *entity.PushMessage {
	data := map[string]string{
		"kind": string(event.Kind),
		"date": event.Date,
	}

	if name, ok := event.Kind.Prayer(); ok {
		msg := &entity.PushMessage{Data: data}
		data["prayer"] = string(name)

		lead, clock := 0, ""
		if event.Prayer != nil {
			lead, clock = event.Prayer.LeadMinutes, event.Prayer.Clock
			data["time"] = clock
		}

		if lead > 0 {
			msg.Title = fmt.Sprintf("%s in %d minutes", name.Title(), lead)
		} else {
			msg.Title = fmt.Sprintf("Time for %s", name.Title())
		}
		if clock != "" {
			msg.Body = fmt.Sprintf("%s prayer is at %s.", name.Title(), clock)
		} else {
			msg.Body = fmt.Sprintf("It is time to pray %s.", name.Title())
		}

		return msg
	}

	id, _ := event.Kind.IslamicEventID()
	data["event_id"] = id

	msg := &entity.PushMessage{Title: id, Data: data}
	if ev := event.Event; ev != nil {
		msg.Title = ev.Title
		msg.Body = ev.Description
		data["hijri_day"] = strconv.Itoa(ev.Hijri.Day)
		data["hijri_month"] = strconv.Itoa(ev.Hijri.Month)
		data["hijri_year"] = strconv.Itoa(ev.Hijri.Year)
		if msg.Body == "" {
			msg.Body = calendar.Format(ev.Hijri)
		}
	}

	return msg
}
