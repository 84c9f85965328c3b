package lease

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"muslimapp/config"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeRedis records SetNX calls and grants each key once.
type fakeRedis struct {
	redis.Cmdable

	keys map[string]string
	ttl  time.Duration
	err  error
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	f.ttl = expiration
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key], _ = value.(string)

	return redis.NewBoolResult(true, nil)
}

func TestRedisLease_Acquire(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{keys: map[string]string{}}
	lease := NewRedisLease(fake, 2*time.Minute, "replica-a")
	tick := time.Date(2024, time.March, 11, 4, 25, 0, 0, time.UTC)

	ok, err := lease.Acquire(ctx, tick)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2*time.Minute, fake.ttl)
	assert.Equal(t, "replica-a", fake.keys["muslimapp:tick:1710131100"])

	ok, err = lease.Acquire(ctx, tick.Add(20*time.Second))
	require.NoError(t, err)
	assert.False(t, ok, "same minute is owned already")

	ok, err = lease.Acquire(ctx, tick.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLease_Error(t *testing.T) {
	lease := NewRedisLease(&fakeRedis{err: errors.New("connection refused")}, time.Minute, "a")

	ok, err := lease.Acquire(context.Background(), time.Now())

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNew_WithoutRedisIsLocal(t *testing.T) {
	lease := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ok, err := lease.Acquire(context.Background(), time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}
