package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// TokenBucketLimiter wraps a token bucket limiter shared by all
// requests; the summary endpoints hit the database directly, so the
// service bounds how fast callers can drive it.
type TokenBucketLimiter struct {
	limiter *rate.Limiter
}

// NewTokenBucketLimiter creates a limiter allowing qps requests per
// second with the given burst.
func NewTokenBucketLimiter(qps int, burst int) *TokenBucketLimiter {
	return &TokenBucketLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), burst),
	}
}

// Allow reports whether one more request may proceed now.
func (l *TokenBucketLimiter) Allow() bool {
	return l.limiter.Allow()
}

var (
	globalLimiter *TokenBucketLimiter
	limiterOnce   sync.Once
)

// InitGlobalRateLimiter sets up the shared limiter used by
// RateLimitMiddleware. Safe to call more than once.
func InitGlobalRateLimiter(qps, burst int) {
	limiterOnce.Do(func() {
		globalLimiter = NewTokenBucketLimiter(qps, burst)
	})
}

// RateLimitMiddleware rejects requests beyond the configured rate with
// 429.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if globalLimiter != nil && !globalLimiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status_code": http.StatusTooManyRequests,
				"status_msg":  "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
