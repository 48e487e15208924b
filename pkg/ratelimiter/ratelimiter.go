// Package ratelimiter throttles requests with an in-memory token bucket
// per key.
//
//	limiter, err := ratelimiter.New(cfg)
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP)).Post("/validate", h)
package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrInvalidConfig is returned by New for a non-positive capacity, refill
	// rate or refill interval.
	ErrInvalidConfig = errors.New("invalid rate limiter configuration")

	// ErrInvalidTokenCount is returned by AllowN for n < 1.
	ErrInvalidTokenCount = errors.New("invalid token count")
)

// Config defines the bucket shape: Capacity is the burst size, RefillRate
// tokens are added every RefillInterval, and buckets idle for StaleAfter are
// dropped.
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"30"`
	RefillRate     int           `env:"REFILL_RATE" envDefault:"10"`
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1m"`
	StaleAfter     time.Duration `env:"STALE_AFTER" envDefault:"1h"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of one check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time

	retryAfter time.Duration
}

// Allowed reports whether the request fit in the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is the wait until the next refill, zero for allowed requests.
func (r Result) RetryAfter() time.Duration {
	return r.retryAfter
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter keeps one bucket per key.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New validates cfg and returns a Limiter.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{cfg: cfg, now: time.Now, buckets: make(map[string]*bucket)}
	for _, opt := range opts {
		opt(l)
	}
	l.lastPrune = l.now()
	return l, nil
}

// Allow consumes one token for key.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	return l.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key. A denied request consumes nothing and
// reports a negative Remaining.
func (l *Limiter) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}

	// Cap the interval count so refills cannot overflow.
	maxIntervals := int64(l.cfg.Capacity/l.cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/l.cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*l.cfg.RefillRate, l.cfg.Capacity)
		b.lastRefill = now
	}

	remaining := b.tokens - n
	if remaining >= 0 {
		b.tokens = remaining
	}
	b.lastAccess = now

	res := Result{
		Limit:     l.cfg.Capacity,
		Remaining: remaining,
		ResetAt:   b.lastRefill.Add(l.cfg.RefillInterval),
	}
	if !res.Allowed() {
		res.retryAfter = max(0, res.ResetAt.Sub(now))
	}
	return res, nil
}

// Reset drops the bucket of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// prune runs at most once per StaleAfter.
func (l *Limiter) prune(now time.Time) {
	if l.cfg.StaleAfter <= 0 || now.Sub(l.lastPrune) < l.cfg.StaleAfter {
		return
	}
	l.lastPrune = now
	for key, b := range l.buckets {
		if now.Sub(b.lastAccess) > l.cfg.StaleAfter {
			delete(l.buckets, key)
		}
	}
}
