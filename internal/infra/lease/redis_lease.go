// Package lease implements service.TickLease so that only one scheduler replica
// evaluates a given tick.
package lease

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"muslimapp/config"
	"muslimapp/internal/domain/lifecycle"
	"muslimapp/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const keyPrefix = "muslimapp:tick:"

type redisLease struct {
	client redis.Cmdable
	ttl    time.Duration
	owner  string
}

// NewRedisLease creates a lease backed by SET NX on one key per tick.
func NewRedisLease(client redis.Cmdable, ttl time.Duration, owner string) service.TickLease {
	return &redisLease{client: client, ttl: ttl, owner: owner}
}

// Acquire returns true when this replica owns the tick.
func (l *redisLease) Acquire(ctx context.Context, tick time.Time) (bool, error) {
	key := keyPrefix + strconv.FormatInt(tick.Truncate(time.Minute).Unix(), 10)

	ok, err := l.client.SetNX(ctx, key, l.owner, l.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire tick lease")
	}

	return ok, nil
}

type localLease struct{}

// NewLocalLease returns a lease that is always granted, for single-replica deployments.
func NewLocalLease() service.TickLease {
	return localLease{}
}

func (localLease) Acquire(context.Context, time.Time) (bool, error) {
	return true, nil
}

// Params holds dependencies for the TickLease, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis lease when redis is configured, otherwise the local lease.
func New(params Params) service.TickLease {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, tick lease is local to this process")

		return NewLocalLease()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	owner, err := os.Hostname()
	if err != nil || owner == "" {
		owner = params.Config.Env.ServiceName
	}

	params.Logger.Info("Using Redis tick lease",
		slog.String("addr", cfg.Addr),
		slog.String("owner", owner),
	)

	return NewRedisLease(client, cfg.LeaseTTL, owner)
}
