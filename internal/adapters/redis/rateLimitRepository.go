package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimitRepositoryRedis counts requests per key in fixed windows.
type RateLimitRepositoryRedis struct {
	Client *redis.Client
}

func NewRateLimitRepositoryRedis(client *redis.Client) *RateLimitRepositoryRedis {
	return &RateLimitRepositoryRedis{Client: client}
}

// Hit increments the counter for key and returns the new count. The expiry
// is refreshed alongside the increment in one pipeline so the window cannot
// leak on a crashed first hit.
func (r *RateLimitRepositoryRedis) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
