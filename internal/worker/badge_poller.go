package worker

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PendingCounter supplies the current pending-booking count.
type PendingCounter interface {
	CountPending(ctx context.Context) (int, error)
}

// BadgeCache persists the last polled value so API instances share it.
type BadgeCache interface {
	SetPending(ctx context.Context, count int) error
	GetPending(ctx context.Context) (int, bool, error)
}

const redisBadgeKey = "portal:badge:pending_jobs"

// RedisBadgeCache stores the badge count in Redis.
type RedisBadgeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBadgeCache builds a cache. The TTL outlives a few missed polls so a
// stalled poller degrades to a stale badge rather than a missing one.
func NewRedisBadgeCache(client *redis.Client, pollInterval time.Duration) *RedisBadgeCache {
	return &RedisBadgeCache{client: client, ttl: 5 * pollInterval}
}

func (c *RedisBadgeCache) SetPending(ctx context.Context, count int) error {
	return c.client.Set(ctx, redisBadgeKey, count, c.ttl).Err()
}

func (c *RedisBadgeCache) GetPending(ctx context.Context) (int, bool, error) {
	count, err := c.client.Get(ctx, redisBadgeKey).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// BadgePoller refreshes the technician menu badge on a fixed interval. The
// menu reads the last polled value; there is no push channel.
type BadgePoller struct {
	counter  PendingCounter
	cache    BadgeCache
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	last   int
	seeded bool
}

// NewBadgePoller constructs the poller.
func NewBadgePoller(counter PendingCounter, cache BadgeCache, interval time.Duration, logger *zap.Logger) *BadgePoller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BadgePoller{counter: counter, cache: cache, interval: interval, logger: logger}
}

// Run polls until the context is cancelled. The first poll happens
// immediately so the badge is populated at startup.
func (p *BadgePoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll refreshes the count. On error the previous value is kept; a stale
// badge beats a flickering one.
func (p *BadgePoller) poll(ctx context.Context) {
	count, err := p.counter.CountPending(ctx)
	if err != nil {
		p.logger.Warn("badge poll failed", zap.Error(err))
		return
	}

	p.mu.Lock()
	p.last = count
	p.seeded = true
	p.mu.Unlock()

	if p.cache != nil {
		if err := p.cache.SetPending(ctx, count); err != nil {
			p.logger.Warn("badge cache write failed", zap.Error(err))
		}
	}
}

// Pending returns the last successfully polled count. Before the first
// successful poll it falls back to the shared cache, so a freshly started
// instance serves the value another instance already computed instead of 0.
func (p *BadgePoller) Pending(ctx context.Context) int {
	p.mu.RLock()
	last, seeded := p.last, p.seeded
	p.mu.RUnlock()

	if seeded || p.cache == nil {
		return last
	}

	count, ok, err := p.cache.GetPending(ctx)
	if err != nil {
		p.logger.Warn("badge cache read failed", zap.Error(err))
		return last
	}
	if !ok {
		return last
	}
	return count
}
