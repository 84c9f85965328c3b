package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"muslimapp/config"
	"muslimapp/internal/delivery"
	"muslimapp/internal/delivery/scheduler"
	"muslimapp/internal/domain/service"
	"muslimapp/internal/infra/catalog"
	"muslimapp/internal/infra/lease"
	logs "muslimapp/internal/infra/log"
	"muslimapp/internal/infra/notification"
	"muslimapp/internal/infra/persistence"
	"muslimapp/internal/infra/prayer"
	"muslimapp/internal/infra/pubsub"
	"muslimapp/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		persistence.Module(cfg),
		injectService(),
		injectPublisher(cfg),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		lease.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				prayer.NewAladhanProvider,
				fx.ResultTags(`name:"aladhan"`),
			),
			// Ticks share prayer times through the cache; the prune loop evicts old dates.
			fx.Annotate(
				prayer.NewTimesCache,
				fx.ParamTags(`name:"aladhan"`),
				fx.As(new(service.PrayerTimeProvider)),
				fx.As(new(service.PrayerTimeCache)),
			),
			catalog.New,
		),
	)
}

// injectPublisher hands due events to Pub/Sub, or to an in-process dispatch pool that
// sends them from this process.
func injectPublisher(cfg *config.Config) fx.Option {
	if cfg.Dispatch.Mode == config.DispatchModePubSub {
		return fx.Provide(pubsub.NewEventPublisher)
	}

	return fx.Provide(
		notification.NewNotifier,
		impl.NewDispatchService,
		fx.Annotate(
			scheduler.NewInProcessPublisher,
			fx.As(new(service.EventPublisher)),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSchedulerService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Scheduler stopped", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
