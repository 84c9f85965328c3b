// Package scheduler runs the due-event scheduler as a long-lived process.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"muslimapp/config"
	"muslimapp/internal/delivery"
	"muslimapp/internal/domain/lifecycle"
	"muslimapp/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type runner struct {
	schedulerUC   usecase.SchedulerUsecase
	tickInterval  time.Duration
	pruneInterval time.Duration
	now           func() time.Time
	logger        *slog.Logger

	stopCtx context.Context
	stop    context.CancelFunc
	started atomic.Bool
	done    chan struct{}
}

// RunnerParams holds dependencies for the scheduler runner, injected by Fx.
type RunnerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	SchedulerUC usecase.SchedulerUsecase
	Logger      *slog.Logger
}

// NewRunner creates the tick and prune loops.
func NewRunner(params RunnerParams) delivery.Delivery {
	r := newRunner(params.SchedulerUC, params.Config.Scheduler, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: r.shutdown,
	})

	return r
}

func newRunner(schedulerUC usecase.SchedulerUsecase, cfg config.SchedulerConfig, logger *slog.Logger) *runner {
	stopCtx, stop := context.WithCancel(context.Background())

	return &runner{
		schedulerUC:   schedulerUC,
		tickInterval:  cfg.TickInterval,
		pruneInterval: cfg.PruneInterval,
		now:           time.Now,
		logger:        logger,
		stopCtx:       stopCtx,
		stop:          stop,
		done:          make(chan struct{}),
	}
}

// Serve runs a tick immediately and then every tick interval until shutdown.
func (r *runner) Serve(ctx context.Context) error {
	r.started.Store(true)
	defer close(r.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer context.AfterFunc(r.stopCtx, cancel)()

	r.logger.Info("[Scheduler] Starting",
		slog.Duration("tick_interval", r.tickInterval),
		slog.Duration("prune_interval", r.pruneInterval),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.loop(gctx, r.tickInterval, r.tick)

		return nil
	})
	g.Go(func() error {
		r.loop(gctx, r.pruneInterval, r.prune)

		return nil
	})

	return g.Wait()
}

func (r *runner) loop(ctx context.Context, interval time.Duration, run func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		run(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *runner) tick(ctx context.Context) {
	if _, err := r.schedulerUC.RunTick(ctx, r.now()); err != nil && ctx.Err() == nil {
		r.logger.Error("[Scheduler] Tick failed", slog.Any("error", err))
	}
}

func (r *runner) prune(ctx context.Context) {
	now := r.now()
	if evicted := r.schedulerUC.PrunePrayerTimes(now); evicted > 0 {
		r.logger.Info("[Scheduler] Pruned cached prayer times", slog.Int("removed", evicted))
	}

	removed, err := r.schedulerUC.PruneLedger(ctx, now)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Error("[Scheduler] Ledger prune failed", slog.Any("error", err))
		}

		return
	}
	if removed > 0 {
		r.logger.Info("[Scheduler] Pruned delivery records", slog.Int64("removed", removed))
	}
}

// shutdown stops the loops and waits for the running tick to return.
func (r *runner) shutdown(ctx context.Context) error {
	r.stop()
	if !r.started.Load() {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	r.logger.Info("[Scheduler] Shutting down")

	select {
	case <-r.done:
	case <-waitCtx.Done():
		r.logger.Warn("[Scheduler] Tick still running at shutdown deadline")
	}

	return nil
}
