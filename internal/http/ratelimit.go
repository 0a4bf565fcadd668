package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore tracks request counts per client. Allow reports whether
// the client is under its per-minute budget.
type RateLimitStore interface {
	Allow(ctx context.Context, clientIP string) (bool, error)
	Stop()
}

// memoryLimiter implements a simple in-memory rate limiter per client IP.
type memoryLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	perMinute    int
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func NewMemoryLimiter(perMinute int) RateLimitStore {
	rl := &memoryLimiter{
		clients:     make(map[string]*clientInfo),
		perMinute:   perMinute,
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

// startCleanup runs periodic cleanup to remove stale client entries.
func (rl *memoryLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes.
func (rl *memoryLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *memoryLimiter) Allow(_ context.Context, clientIP string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{
			lastRequest: now,
			requests:    1,
		}
		return true, nil
	}

	// Reset counter if more than 1 minute has passed
	if now.Sub(client.lastRequest) > time.Minute {
		client.requests = 1
		client.lastRequest = now
		return true, nil
	}

	client.requests++
	client.lastRequest = now

	return client.requests <= rl.perMinute, nil
}

func (rl *memoryLimiter) Stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

// redisLimiter counts requests in Redis so the budget is shared across
// replicas. Keys expire on their own; no cleanup goroutine needed.
type redisLimiter struct {
	client    *redis.Client
	perMinute int
}

func NewRedisLimiter(addr, password string, perMinute int) RateLimitStore {
	return &redisLimiter{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		perMinute: perMinute,
	}
}

func (rl *redisLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", clientIP, time.Now().Format("200601021504"))

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, key, 2*time.Minute).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return count <= int64(rl.perMinute), nil
}

func (rl *redisLimiter) Stop() {
	_ = rl.client.Close()
}
