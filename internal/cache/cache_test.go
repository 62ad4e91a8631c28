// File: internal/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()

	// configured fns are delegated to
	f := &FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("v", nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			return redis.NewIntResult(int64(len(keys)), nil)
		},
	}
	require.Equal(t, "v", f.Get(ctx, "k").Val())
	require.Equal(t, "OK", f.Set(ctx, "k", "v", 0).Val())
	require.Equal(t, int64(2), f.Del(ctx, "a", "b").Val())
	require.NoError(t, f.Close())

	// unset fns panic
	empty := &FakeCache{}
	require.Panics(t, func() { empty.Get(ctx, "k") })
	require.Panics(t, func() { empty.Set(ctx, "k", "v", 0) })
	require.Panics(t, func() { empty.Del(ctx, "k") })
	require.NoError(t, empty.Close())
}
