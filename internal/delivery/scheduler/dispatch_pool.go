package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/lifecycle"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrQueueFull is returned when the dispatch queue cannot take another event.
	// The event is re-evaluated on the next tick.
	ErrQueueFull = errors.New("dispatch queue is full")

	// ErrPoolClosed is returned after Shutdown.
	ErrPoolClosed = errors.New("dispatch pool is closed")
)

// DispatchPool is the in-process EventPublisher: a bounded queue drained by a fixed
// number of workers calling the dispatcher.
type DispatchPool struct {
	dispatchUC usecase.DispatchUsecase
	workers    int
	queue      chan *entity.DueEvent
	logger     *slog.Logger

	// workCtx is cancelled when a drain overruns its deadline.
	workCtx    context.Context
	cancelWork context.CancelFunc
	wg         sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewDispatchPool creates a pool. Workers start with Start.
func NewDispatchPool(dispatchUC usecase.DispatchUsecase, workers, queueSize int, logger *slog.Logger) *DispatchPool {
	workCtx, cancel := context.WithCancel(context.Background())

	return &DispatchPool{
		dispatchUC: dispatchUC,
		workers:    max(workers, 1),
		queue:      make(chan *entity.DueEvent, max(queueSize, 1)),
		logger:     logger,
		workCtx:    workCtx,
		cancelWork: cancel,
	}
}

// DispatchPoolParams holds dependencies for the in-process publisher, injected by Fx.
type DispatchPoolParams struct {
	fx.In

	Lc         fx.Lifecycle
	DispatchUC usecase.DispatchUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewInProcessPublisher builds a DispatchPool tied to the fx lifecycle. Shutdown drains
// queued events within lifecycle.DefaultTimeout.
func NewInProcessPublisher(params DispatchPoolParams) *DispatchPool {
	cfg := params.Config.Dispatch
	pool := NewDispatchPool(params.DispatchUC, cfg.Workers, cfg.QueueSize, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			pool.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			drainCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return pool.Shutdown(drainCtx)
		},
	})

	params.Logger.Info("Using in-process dispatch pool",
		slog.Int("workers", pool.workers),
		slog.Int("queue_size", cap(pool.queue)),
	)

	return pool
}

// Start launches the workers. Calling it twice has no effect.
func (p *DispatchPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.closed {
		return
	}
	p.started = true

	for range p.workers {
		p.wg.Add(1)
		go p.work()
	}
}

// PublishDueEvent enqueues event without blocking.
func (p *DispatchPool) PublishDueEvent(ctx context.Context, event *entity.DueEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case p.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close drains the queue within lifecycle.DefaultTimeout.
func (p *DispatchPool) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return p.Shutdown(ctx)
}

// Shutdown stops accepting events and waits for queued ones to be dispatched. When ctx
// expires first, in-flight dispatches are cancelled and their records stay pending.
func (p *DispatchPool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.queue)
	started := p.started
	p.mu.Unlock()

	if !started {
		p.cancelWork()

		return nil
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancelWork()

		return nil
	case <-ctx.Done():
		p.logger.Warn("[Dispatcher] Drain deadline reached, cancelling in-flight deliveries",
			slog.Int("queued", len(p.queue)),
		)
		p.cancelWork()
		<-done

		return errors.Wrap(ctx.Err(), "dispatch pool drain")
	}
}

func (p *DispatchPool) work() {
	defer p.wg.Done()

	for event := range p.queue {
		if p.workCtx.Err() != nil {
			// Abandoned events are re-evaluated by the next scheduler run.
			continue
		}
		p.dispatch(event)
	}
}

func (p *DispatchPool) dispatch(event *entity.DueEvent) {
	requestID := event.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx, logger := deliverycontext.Scope(p.workCtx, p.logger, requestID)

	record, err := p.dispatchUC.Dispatch(ctx, event)
	if err != nil {
		logger.Warn("[Dispatcher] Dispatch failed",
			slog.String("device_id", event.DeviceID.String()),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("[Dispatcher] Dispatch finished",
		slog.String("device_id", event.DeviceID.String()),
		slog.String("kind", string(event.Kind)),
		slog.String("outcome", string(record.Outcome)),
	)
}
