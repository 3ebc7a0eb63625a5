package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationStore(t *testing.T) (*NotificationStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewNotificationStore(client), mr
}

func TestNotificationStore_CheckAndSet_FirstDelivery(t *testing.T) {
	store, mr := setupNotificationStore(t)

	fresh, err := store.CheckAndSet(context.Background(), "notification:n-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh, "first delivery should be fresh")
	assert.True(t, mr.Exists("csg:notification:n-1"))
	assert.Equal(t, time.Hour, mr.TTL("csg:notification:n-1"))
}

func TestNotificationStore_CheckAndSet_Redelivery(t *testing.T) {
	store, _ := setupNotificationStore(t)
	ctx := context.Background()

	fresh, err := store.CheckAndSet(ctx, "notification:n-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.CheckAndSet(ctx, "notification:n-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, fresh, "redelivery should be reported as seen")
}

func TestNotificationStore_CheckAndSet_Expired(t *testing.T) {
	store, mr := setupNotificationStore(t)
	ctx := context.Background()

	_, err := store.CheckAndSet(ctx, "notification:n-2", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	fresh, err := store.CheckAndSet(ctx, "notification:n-2", time.Second)
	require.NoError(t, err)
	assert.True(t, fresh, "expired key should be accepted again")
}

func TestNotificationStore_Forget(t *testing.T) {
	store, mr := setupNotificationStore(t)
	ctx := context.Background()

	_, err := store.CheckAndSet(ctx, "notification:n-3", time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Forget(ctx, "notification:n-3"))
	assert.False(t, mr.Exists("csg:notification:n-3"))

	fresh, err := store.CheckAndSet(ctx, "notification:n-3", time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh)

	// Forgetting an unknown key is not an error.
	assert.NoError(t, store.Forget(ctx, "notification:missing"))
}

func TestNotificationStore_ServerDown(t *testing.T) {
	store, mr := setupNotificationStore(t)
	mr.Close()

	_, err := store.CheckAndSet(context.Background(), "notification:n-4", time.Hour)
	assert.Error(t, err)
}
