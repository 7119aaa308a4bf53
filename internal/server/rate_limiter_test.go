package server

import (
	"testing"
	"time"
)

// TestRateLimiterBurst verifies the bucket allows exactly the burst size
// before refusing.
func TestRateLimiterBurst(t *testing.T) {
	rl := newRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.allow() {
			t.Fatalf("allow() call %d refused within burst", i+1)
		}
	}
	if rl.allow() {
		t.Error("allow() succeeded past the burst with no refill")
	}
}

// TestRateLimiterRefill verifies tokens come back after the refill interval.
func TestRateLimiterRefill(t *testing.T) {
	rl := newRateLimiter(1, 50*time.Millisecond)

	if !rl.allow() {
		t.Fatal("first allow() refused")
	}
	if rl.allow() {
		t.Fatal("second allow() succeeded before refill")
	}

	time.Sleep(60 * time.Millisecond)
	if !rl.allow() {
		t.Error("allow() refused after refill interval elapsed")
	}
}

// TestRateLimiterDefensiveDefaults verifies nonsensical parameters are
// clamped instead of producing a stuck limiter.
func TestRateLimiterDefensiveDefaults(t *testing.T) {
	rl := newRateLimiter(0, 0)

	if !rl.allow() {
		t.Error("limiter with clamped parameters refused its first token")
	}
}
