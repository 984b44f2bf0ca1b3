package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// TurnGuard admits one in-flight turn per survey.
type TurnGuard interface {
	// Acquire returns false when a turn for key is already running.
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string)
}

// LocalTurnGuard keeps leases in process memory. A lease that is never
// released expires after ttl so a crashed handler cannot lock a survey.
type LocalTurnGuard struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewLocalTurnGuard(ttl time.Duration) *LocalTurnGuard {
	// no janitor: expired items are ignored by Add and overwritten
	return &LocalTurnGuard{
		cache: cache.New(ttl, 0),
		ttl:   ttl,
	}
}

func (g *LocalTurnGuard) Acquire(ctx context.Context, key string) (bool, error) {
	if err := g.cache.Add(key, struct{}{}, g.ttl); err != nil {
		return false, nil
	}
	return true, nil
}

func (g *LocalTurnGuard) Release(ctx context.Context, key string) {
	g.cache.Delete(key)
}
