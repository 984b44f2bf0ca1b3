package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const turnGuardPrefix = "viva:turn:"

// RedisTurnGuard shares leases between server replicas.
type RedisTurnGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTurnGuard(client *redis.Client, ttl time.Duration) *RedisTurnGuard {
	return &RedisTurnGuard{client: client, ttl: ttl}
}

// NewRedisTurnGuardFromURL parses a redis:// URL and checks the connection.
func NewRedisTurnGuardFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisTurnGuard, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisTurnGuard(client, ttl), nil
}

func (g *RedisTurnGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, turnGuardPrefix+key, 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire turn lease: %w", err)
	}
	return ok, nil
}

func (g *RedisTurnGuard) Release(ctx context.Context, key string) {
	// best effort; the TTL covers a failed delete
	_ = g.client.Del(context.WithoutCancel(ctx), turnGuardPrefix+key).Err()
}

func (g *RedisTurnGuard) Close() error {
	return g.client.Close()
}
