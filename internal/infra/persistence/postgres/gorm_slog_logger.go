package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Scheduler ticks page through every active device, so anything slower than
// this is worth a warning.
const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog. Statements issued under a
// request or dispatch context are logged with that context's request id.
type gormSlogLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{logger: logger, level: level}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.print(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.print(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.print(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) print(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	deliverycontext.Logger(ctx, l.logger).LogAttrs(ctx, level, "[Postgres] "+fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	logger := deliverycontext.Logger(ctx, l.logger)

	switch {
	// A missing device or ledger row is an expected outcome, not a failure.
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		logger.LogAttrs(ctx, slog.LevelError, "[Postgres] Query failed", append(queryAttrs(fc, elapsed), slog.Any("error", err))...)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		logger.LogAttrs(ctx, slog.LevelWarn, "[Postgres] Slow query", queryAttrs(fc, elapsed)...)
	case l.level >= gormlogger.Info:
		logger.LogAttrs(ctx, slog.LevelDebug, "[Postgres] Query", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
