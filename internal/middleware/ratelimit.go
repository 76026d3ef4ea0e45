package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"transaction-coordinator/pkg/response"
)

const (
	defaultRatePerMinute = 10
	defaultLimiterSize   = 1000
	limiterTTL           = 5 * time.Minute
)

// LoginRateLimit throttles login attempts per client IP.
func (m Middleware) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.loginLimiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.LoginRateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	mu       sync.Mutex // makes get-or-create atomic
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, capacity int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = defaultRatePerMinute
	}
	if capacity <= 0 {
		capacity = defaultLimiterSize
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](capacity, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if !rl.limiter(key).Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
