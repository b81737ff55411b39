package service

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is an in-memory per-client token bucket limiter. It is safe
// for concurrent use. Buckets idle for longer than idleTTL are evicted by
// a sweeper that stops when the context passed to NewRateLimiter is done.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*tokenBucket
	rate    float64 // tokens per second
	burst   float64
	idleTTL time.Duration
	now     func() time.Time
}

type tokenBucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter creates a limiter refilling rate tokens per second up to
// burst tokens per client.
func NewRateLimiter(ctx context.Context, rate float64, burst int, idleTTL time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*tokenBucket),
		rate:    rate,
		burst:   float64(burst),
		idleTTL: idleTTL,
		now:     time.Now,
	}
	go rl.sweep(ctx)
	return rl
}

// Allow consumes one token for client and reports whether one was available.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.clients[client]
	if !ok {
		b = &tokenBucket{tokens: rl.burst, lastSeen: now}
		rl.clients[client] = b
	}

	b.tokens = min(b.tokens+now.Sub(b.lastSeen).Seconds()*rl.rate, rl.burst)
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Clients returns the number of tracked clients.
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Evict drops buckets not seen within idleTTL.
func (rl *RateLimiter) Evict() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	for client, b := range rl.clients {
		if b.lastSeen.Before(cutoff) {
			delete(rl.clients, client)
		}
	}
}

func (rl *RateLimiter) sweep(ctx context.Context) {
	interval := rl.idleTTL / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Evict()
		}
	}
}
