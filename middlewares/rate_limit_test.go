package middlewares

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !rl.Allow("u:alice") {
			t.Fatalf("hit %d should be allowed", i+1)
		}
	}
	if rl.Allow("u:alice") {
		t.Fatalf("hit 4 should be rejected")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Minute)
	if !rl.Allow("u:alice") {
		t.Fatalf("alice's first hit should be allowed")
	}
	if !rl.Allow("u:bob") {
		t.Fatalf("bob's first hit should be allowed regardless of alice")
	}
	if rl.Allow("u:alice") {
		t.Fatalf("alice's second hit should be rejected")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, time.Minute)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("k") || !rl.Allow("k") {
		t.Fatalf("first two hits should be allowed")
	}
	if rl.Allow("k") {
		t.Fatalf("third hit inside the window should be rejected")
	}

	now = now.Add(61 * time.Second)
	if !rl.Allow("k") {
		t.Fatalf("hit after the window slid should be allowed")
	}
}
