package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// RateLimiterConfig holds rate limiter configuration
type RateLimiterConfig struct {
	Name        string        `mapstructure:"name"`
	Rate        int           `mapstructure:"rate"`         // requests per period
	Period      time.Duration `mapstructure:"period"`       // time period
	BurstSize   int           `mapstructure:"burst_size"`   // max burst
	WaitTimeout time.Duration `mapstructure:"wait_timeout"` // max wait time
}

// DefaultRateLimiterConfig returns default configuration
func DefaultRateLimiterConfig(name string) *RateLimiterConfig {
	return &RateLimiterConfig{
		Name:        name,
		Rate:        1,
		Period:      time.Second,
		BurstSize:   1,
		WaitTimeout: 5 * time.Second,
	}
}

// TokenBucketLimiter implements token bucket rate limiting
type TokenBucketLimiter struct {
	config     *RateLimiterConfig
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per nanosecond
	lastRefill time.Time
	mutex      sync.Mutex
	metrics    RateLimiterMetrics
}

// RateLimiterMetrics holds rate limiter counters
type RateLimiterMetrics struct {
	TotalRequests    int64
	AllowedRequests  int64
	RejectedRequests int64
	WaitedRequests   int64
}

// NewTokenBucketLimiter creates a new token bucket rate limiter
func NewTokenBucketLimiter(config *RateLimiterConfig) *TokenBucketLimiter {
	burst := config.BurstSize
	if burst < 1 {
		burst = 1
	}
	return &TokenBucketLimiter{
		config:     config,
		tokens:     float64(burst),
		maxTokens:  float64(burst),
		refillRate: float64(config.Rate) / float64(config.Period.Nanoseconds()),
		lastRefill: time.Now(),
	}
}

// Allow reports whether a request may proceed now
func (l *TokenBucketLimiter) Allow() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.refill()
	l.metrics.TotalRequests++
	if l.tokens >= 1 {
		l.tokens--
		l.metrics.AllowedRequests++
		return true
	}
	l.metrics.RejectedRequests++
	return false
}

// Wait blocks until a token is available, the wait would exceed the
// configured timeout, or ctx is done.
func (l *TokenBucketLimiter) Wait(ctx context.Context) error {
	l.mutex.Lock()
	l.refill()
	l.metrics.TotalRequests++
	if l.tokens >= 1 {
		l.tokens--
		l.metrics.AllowedRequests++
		l.mutex.Unlock()
		return nil
	}

	waitTime := time.Duration((1 - l.tokens) / l.refillRate)
	if waitTime > l.config.WaitTimeout {
		l.metrics.RejectedRequests++
		l.mutex.Unlock()
		return ErrRateLimitExceeded
	}
	// reserve the token now so concurrent waiters queue behind it
	l.tokens--
	l.metrics.WaitedRequests++
	l.mutex.Unlock()

	timer := time.NewTimer(waitTime)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		l.mutex.Lock()
		l.tokens++
		l.mutex.Unlock()
		return ctx.Err()
	case <-timer.C:
		l.mutex.Lock()
		l.metrics.AllowedRequests++
		l.mutex.Unlock()
		return nil
	}
}

// refill adds tokens based on elapsed time (must be called with mutex held)
func (l *TokenBucketLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(l.lastRefill)
	l.lastRefill = now

	l.tokens += float64(elapsed.Nanoseconds()) * l.refillRate
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}
}

// Metrics returns current metrics
func (l *TokenBucketLimiter) Metrics() RateLimiterMetrics {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.metrics
}

// KeyedLimiter applies a sliding window limit per key, such as a client IP.
type KeyedLimiter struct {
	rate    int
	period  time.Duration
	windows map[string][]time.Time
	mutex   sync.Mutex
	now     func() time.Time
}

// NewKeyedLimiter allows rate requests per key within each period.
func NewKeyedLimiter(rate int, period time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		rate:    rate,
		period:  period,
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	windowStart := now.Add(-l.period)

	kept := l.windows[key][:0]
	for _, ts := range l.windows[key] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.rate {
		l.windows[key] = kept
		return false
	}
	l.windows[key] = append(kept, now)
	return true
}

// Prune drops keys with no requests inside the current window.
func (l *KeyedLimiter) Prune() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	windowStart := l.now().Add(-l.period)
	for key, stamps := range l.windows {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(windowStart) {
			delete(l.windows, key)
		}
	}
}

// Len returns the number of tracked keys
func (l *KeyedLimiter) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.windows)
}
