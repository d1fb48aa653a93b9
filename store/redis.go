package store

import (
	"context"
	"fmt"
	"time"

	"tatya/config"

	"github.com/go-redis/redis/v8"
)

// RedisStore persists progress across runs. Keys are namespaced so
// several clients can share one Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to the Redis configured in AppConfig and
// namespaces all keys under "tatya:<scope>:".
func NewRedisStore(scope string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (progress store): %w", err)
	}
	return &RedisStore{client: client, prefix: "tatya:" + scope + ":"}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// No expiry: values persist until explicitly removed.
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
