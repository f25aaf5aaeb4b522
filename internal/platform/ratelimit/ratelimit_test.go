package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Disabled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var nilLimiter *Limiter
	for i := 0; i < 100; i++ {
		ok, _, err := nilLimiter.Allow(ctx, "k")
		if err != nil || !ok {
			t.Fatalf("nil limiter must allow, got ok=%v err=%v", ok, err)
		}
	}

	zero := New(0, time.Minute, NewMemoryStore())
	if ok, _, err := zero.Allow(ctx, "k"); err != nil || !ok {
		t.Fatalf("zero-limit limiter must allow, got ok=%v err=%v", ok, err)
	}
}

func TestLimiter_DeniesOverLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	l := New(3, time.Minute, NewMemoryStore())
	for i := 0; i < 3; i++ {
		ok, _, err := l.Allow(ctx, "1.2.3.4")
		if err != nil || !ok {
			t.Fatalf("attempt %d: ok=%v err=%v", i, ok, err)
		}
	}
	ok, retryAfter, err := l.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("Allow err=%v", err)
	}
	if ok {
		t.Fatalf("expected denial after the limit")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected a positive retry-after, got %v", retryAfter)
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	l := New(1, time.Minute, NewMemoryStore())
	if ok, _, _ := l.Allow(ctx, "1.1.1.1"); !ok {
		t.Fatalf("first attempt for key a must pass")
	}
	if ok, _, _ := l.Allow(ctx, "1.1.1.1"); ok {
		t.Fatalf("second attempt for key a must be denied")
	}
	if ok, _, _ := l.Allow(ctx, "2.2.2.2"); !ok {
		t.Fatalf("another key must not share the bucket")
	}
}

func TestMemoryStore_Refills(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryStore()
	if ok, _, err := store.Allow(ctx, "k", 1, 50*time.Millisecond); err != nil || !ok {
		t.Fatalf("first take: ok=%v err=%v", ok, err)
	}
	if ok, _, _ := store.Allow(ctx, "k", 1, 50*time.Millisecond); ok {
		t.Fatalf("bucket should be empty")
	}
	time.Sleep(120 * time.Millisecond)
	if ok, _, err := store.Allow(ctx, "k", 1, 50*time.Millisecond); err != nil || !ok {
		t.Fatalf("expected refill after the window, got ok=%v err=%v", ok, err)
	}
}
