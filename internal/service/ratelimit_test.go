package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/exercise-tracker/internal/service"
)

func newTestLimiter(t *testing.T, rate float64, burst int, ttl time.Duration) *service.RateLimiter {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return service.NewRateLimiter(ctx, rate, burst, ttl)
}

func TestRateLimiter_AllowsUpToBurst(t *testing.T) {
	rl := newTestLimiter(t, 1, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("4th request should be denied")
	}
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	rl := newTestLimiter(t, 1, 1, time.Minute)

	if !rl.Allow("a") {
		t.Fatal("a: first request should be allowed")
	}
	if rl.Allow("a") {
		t.Fatal("a: second request should be denied")
	}
	if !rl.Allow("b") {
		t.Fatal("b: first request should be allowed")
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	rl := newTestLimiter(t, 100, 1, time.Minute)

	if !rl.Allow("r") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("r") {
		t.Fatal("second immediate request should be denied")
	}

	time.Sleep(50 * time.Millisecond)

	if !rl.Allow("r") {
		t.Fatal("request after refill should be allowed")
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := newTestLimiter(t, 1, 1, 10*time.Millisecond)

	rl.Allow("idle")
	if rl.Clients() != 1 {
		t.Fatalf("expected 1 tracked client, got %d", rl.Clients())
	}

	time.Sleep(30 * time.Millisecond)
	rl.Evict()

	if rl.Clients() != 0 {
		t.Fatalf("expected idle client to be evicted, got %d", rl.Clients())
	}
}
