package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/resilience"
)

const msgTooManyRequests = "Too many requests. Please try again later."

// RateLimit rejects clients that exceed limiter's budget, keyed by client IP.
// A nil limiter admits everything.
func RateLimit(limiter *resilience.KeyedLimiter, retryAfter time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		abort(c, http.StatusTooManyRequests, msgTooManyRequests)
	}
}

// LoginThrottle limits the credential endpoints (login, forgot-password)
// per client IP.
type LoginThrottle struct {
	limiter *resilience.KeyedLimiter
}

// NewLoginThrottle creates a LoginThrottle allowing login_rate_per_minute
// attempts per client. Zero disables throttling.
func NewLoginThrottle(cfg *config.AuthConfig) *LoginThrottle {
	if cfg.LoginRatePerMinute <= 0 {
		return &LoginThrottle{}
	}
	return &LoginThrottle{limiter: resilience.NewKeyedLimiter(cfg.LoginRatePerMinute, time.Minute)}
}

// Handler returns the throttling middleware
func (t *LoginThrottle) Handler() gin.HandlerFunc {
	return RateLimit(t.limiter, time.Minute)
}

// Prune drops clients whose window has expired
func (t *LoginThrottle) Prune() {
	if t.limiter != nil {
		t.limiter.Prune()
	}
}

// Clients returns the number of clients currently tracked
func (t *LoginThrottle) Clients() int {
	if t.limiter == nil {
		return 0
	}
	return t.limiter.Len()
}
