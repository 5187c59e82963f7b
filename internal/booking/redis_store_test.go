package booking

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	store := NewRedisStore(client, time.Minute, zap.NewNop())
	owner := uuid.NewString()
	t.Cleanup(func() { _ = store.Clear(ctx, owner) })

	cart := NewCart()
	require.NoError(t, cart.AddItem(camera(3)))
	require.NoError(t, store.Save(ctx, owner, cart))

	restored, err := store.Load(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 150.0, restored.Total())

	require.NoError(t, client.Set(ctx, storageKey(owner), "garbage", time.Minute).Err())
	restored, err = store.Load(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, restored.Items)
}

func TestRedisStore_UpdateRetriesAfterConcurrentWrite(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	store := NewRedisStore(client, time.Minute, zap.NewNop())
	owner := uuid.NewString()
	t.Cleanup(func() { _ = store.Clear(ctx, owner) })

	calls := 0
	cart, err := store.Update(ctx, owner, func(c *Cart) error {
		calls++
		if calls == 1 {
			other := NewCart()
			other.SetLocation(4, "Harbour")
			require.NoError(t, store.Save(ctx, owner, other))
		}
		return c.AddItem(camera(1))
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, uint(4), cart.LocationID)

	restored, err := store.Load(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint(4), restored.LocationID)
	assert.Len(t, restored.Items, 1)
}
