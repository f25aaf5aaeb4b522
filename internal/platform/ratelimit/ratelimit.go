// Package ratelimit throttles login attempts per client key (usually IP).
// It supports a process-local token bucket store and a Redis-backed store for
// multi-instance deployments.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Store decides whether one more attempt under key is allowed within the
// window. When denied, retryAfter hints how long the caller should wait.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// Limiter throttles attempts per key using a Store.
// A nil Limiter or a limit of zero allows everything.
type Limiter struct {
	limit  int
	window time.Duration
	store  Store
}

func New(limit int, window time.Duration, store Store) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{limit: limit, window: window, store: store}
}

func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l == nil || l.limit <= 0 || l.store == nil {
		return true, 0, nil
	}
	if key == "" {
		key = "unknown"
	}
	return l.store.Allow(ctx, key, l.limit, l.window)
}

// MemoryStore is a process-local Store backed by per-key token buckets.
// Stale buckets are evicted as a side effect of Allow.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*keyBucket
}

type keyBucket struct {
	bucket   *tokenBucket
	lastSeen time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*keyBucket)}
}

func (s *MemoryStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	_ = ctx
	s.mu.Lock()
	kb, ok := s.buckets[key]
	if !ok {
		rate := float64(limit) / window.Seconds()
		if rate <= 0 {
			rate = 1 / window.Seconds()
		}
		kb = &keyBucket{bucket: newTokenBucket(rate, limit)}
		s.buckets[key] = kb
	}
	kb.lastSeen = time.Now()
	s.evictLocked(window)
	s.mu.Unlock()

	if kb.bucket.allow() {
		return true, 0, nil
	}
	return false, time.Second, nil
}

func (s *MemoryStore) evictLocked(window time.Duration) {
	cutoff := time.Now().Add(-2 * window)
	for key, kb := range s.buckets {
		if kb.lastSeen.Before(cutoff) {
			delete(s.buckets, key)
		}
	}
}

type tokenBucket struct {
	mu        sync.Mutex
	rate      float64
	capacity  float64
	tokens    float64
	lastCheck time.Time
}

func newTokenBucket(rate float64, burst int) *tokenBucket {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &tokenBucket{
		rate:      rate,
		capacity:  float64(burst),
		tokens:    float64(burst),
		lastCheck: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	now := time.Now()
	elapsed := now.Sub(tb.lastCheck).Seconds()
	tb.lastCheck = now
	tb.tokens += elapsed * tb.rate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
	if tb.tokens < 1 {
		return false
	}
	tb.tokens--
	return true
}
