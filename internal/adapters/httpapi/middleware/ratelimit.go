package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is the counter store behind the rate limit middleware.
type RateLimiter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitMiddleware enforces a fixed-window per-client request budget.
// A failing counter store lets traffic through rather than taking the API
// down with it.
func RateLimitMiddleware(limiter RateLimiter, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()
		count, err := limiter.Hit(c.Request.Context(), key, window)
		if err != nil {
			c.Next()
			return
		}
		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
