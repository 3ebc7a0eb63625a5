package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NotificationStore implements ports.NotificationStore using Redis SET NX.
type NotificationStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewNotificationStore creates a new Redis-backed notification de-duplication store.
func NewNotificationStore(client goredis.UniversalClient) *NotificationStore {
	return &NotificationStore{
		client: client,
		prefix: "csg:",
	}
}

// CheckAndSet records key for ttl. Returns true if the key is new, false if
// the notification was already delivered.
func (s *NotificationStore) CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis notification check: %w", err)
	}
	return result == "OK", nil
}

// Forget removes key so the next delivery is processed again.
func (s *NotificationStore) Forget(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis notification forget: %w", err)
	}
	return nil
}
