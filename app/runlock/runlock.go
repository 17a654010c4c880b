// Package runlock guards against overlapping synchronization runs.
// The reconciler assumes it is the only writer; when a redis address is
// configured, a SETNX lock enforces that across hosts and cron overlap.
package runlock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockKey = "devsync:run_lock"

type Lock struct {
	rdb   *redis.Client
	owner string
	ttl   time.Duration
}

func New(addr, owner string, ttl time.Duration) *Lock {
	if addr == "" {
		return nil
	}
	return &Lock{
		rdb:   redis.NewClient(&redis.Options{Addr: addr}),
		owner: owner,
		ttl:   ttl,
	}
}

// Acquire takes the lock or reports which run currently holds it.
func (l *Lock) Acquire(ctx context.Context) error {
	ok, err := l.rdb.SetNX(ctx, lockKey, l.owner, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		holder, _ := l.rdb.Get(ctx, lockKey).Result()
		return fmt.Errorf("another sync run holds the lock (run %s)", holder)
	}
	return nil
}

// Release drops the lock only if this run still owns it.
func (l *Lock) Release(ctx context.Context) {
	val, err := l.rdb.Get(ctx, lockKey).Result()
	if err != nil || val != l.owner {
		return
	}
	l.rdb.Del(ctx, lockKey)
	_ = l.rdb.Close()
}
