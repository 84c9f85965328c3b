package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"muslimapp/config"
	"muslimapp/internal/domain/lifecycle"
	"muslimapp/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval = 30 * time.Second
	// A scheduler tick that waits this long for connections risks overrunning its interval.
	poolWaitWarnThreshold = 100 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the device registry and delivery ledger database. The connection
// is verified, and the schema migrated when storage.autoMigrate is set, on start.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	// Multi-statement work goes through TransactionManager explicitly.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres sql.DB")
	}

	statsCtx, stopStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}

			if params.Config.Storage.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("[Postgres] Schema migrated")
			}

			go watchPoolWaits(statsCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopStats()

			return errors.Wrap(sqlDB.Close(), "failed to close postgres")
		},
	})

	return db, nil
}

// Migrate creates or alters the devices and delivery_records tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.DeviceModel{}, &model.DeliveryRecordModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// watchPoolWaits logs whenever callers had to wait for a pooled connection
// since the previous sample.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur
		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited/time.Duration(waits) >= poolWaitWarnThreshold {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "[Postgres] Connection pool saturated",
			slog.Int64("waits", waits),
			slog.Duration("avg_wait", waited/time.Duration(waits)),
			slog.Int("open", cur.OpenConnections),
			slog.Int("in_use", cur.InUse),
			slog.Int("max_open", cur.MaxOpenConnections),
		)
	}
}
