package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/entity"
	mockUC "muslimapp/internal/mocks/usecase"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dueEvent() *entity.DueEvent {
	return &entity.DueEvent{
		RequestID: uuid.NewString(),
		DeviceID:  uuid.New(),
		Kind:      entity.PrayerEventKind(entity.PrayerFajr),
		Date:      "2025-03-10",
		Deadline:  time.Now().Add(time.Hour),
	}
}

func TestDispatchPool_DispatchesQueuedEvents(t *testing.T) {
	dispatchUC := mockUC.NewMockDispatchUsecase(t)

	var dispatched atomic.Int32
	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, event *entity.DueEvent) (*entity.DeliveryRecord, error) {
			assert.Equal(t, event.RequestID, deliverycontext.RequestID(ctx))
			dispatched.Add(1)

			return &entity.DeliveryRecord{Outcome: entity.OutcomeSent}, nil
		}).
		Times(5)

	pool := NewDispatchPool(dispatchUC, 2, 10, discardLogger())
	pool.Start()

	for range 5 {
		require.NoError(t, pool.PublishDueEvent(context.Background(), dueEvent()))
	}

	require.NoError(t, pool.Close())
	assert.Equal(t, int32(5), dispatched.Load())
}

func TestDispatchPool_QueueFull(t *testing.T) {
	pool := NewDispatchPool(mockUC.NewMockDispatchUsecase(t), 1, 1, discardLogger())

	// Workers are not started, so the single slot stays occupied.
	require.NoError(t, pool.PublishDueEvent(context.Background(), dueEvent()))
	assert.ErrorIs(t, pool.PublishDueEvent(context.Background(), dueEvent()), ErrQueueFull)
}

func TestDispatchPool_RejectsAfterShutdown(t *testing.T) {
	pool := NewDispatchPool(mockUC.NewMockDispatchUsecase(t), 1, 1, discardLogger())
	pool.Start()

	require.NoError(t, pool.Shutdown(context.Background()))
	require.NoError(t, pool.Shutdown(context.Background()))

	assert.ErrorIs(t, pool.PublishDueEvent(context.Background(), dueEvent()), ErrPoolClosed)
}

func TestDispatchPool_DrainDeadlineCancelsInFlight(t *testing.T) {
	dispatchUC := mockUC.NewMockDispatchUsecase(t)

	started := make(chan struct{})
	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.DueEvent) (*entity.DeliveryRecord, error) {
			close(started)
			<-ctx.Done()

			return &entity.DeliveryRecord{Outcome: entity.OutcomePending}, ctx.Err()
		}).
		Once()

	pool := NewDispatchPool(dispatchUC, 1, 4, discardLogger())
	pool.Start()

	require.NoError(t, pool.PublishDueEvent(context.Background(), dueEvent()))
	<-started
	// Queued behind the blocked worker, so it is abandoned once the drain is cut short.
	require.NoError(t, pool.PublishDueEvent(context.Background(), dueEvent()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.Shutdown(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunner_TicksAndPrunesUntilShutdown(t *testing.T) {
	schedulerUC := mockUC.NewMockSchedulerUsecase(t)

	var ticks, prunes, cachePrunes atomic.Int32
	schedulerUC.EXPECT().RunTick(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (*usecase.TickReport, error) {
			ticks.Add(1)

			return &usecase.TickReport{}, nil
		}).
		Maybe()
	schedulerUC.EXPECT().PruneLedger(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (int64, error) {
			prunes.Add(1)

			return 0, nil
		}).
		Maybe()
	schedulerUC.EXPECT().PrunePrayerTimes(mock.Anything).
		RunAndReturn(func(time.Time) int {
			cachePrunes.Add(1)

			return 2
		}).
		Maybe()

	r := newRunner(schedulerUC, config.SchedulerConfig{
		TickInterval:  5 * time.Millisecond,
		PruneInterval: time.Hour,
	}, discardLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, r.Serve(context.Background()))
	}()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	require.NoError(t, r.shutdown(context.Background()))
	wg.Wait()

	// Prune runs once at start, then only every hour.
	assert.Equal(t, int32(1), prunes.Load())
	assert.Equal(t, int32(1), cachePrunes.Load())

	settled := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, ticks.Load())
}

func TestRunner_ShutdownBeforeServe(t *testing.T) {
	r := newRunner(mockUC.NewMockSchedulerUsecase(t), config.SchedulerConfig{
		TickInterval:  time.Minute,
		PruneInterval: time.Hour,
	}, discardLogger())

	assert.NoError(t, r.shutdown(context.Background()))
}
