package config

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// InitRedis opens the Redis connection used by the rate limiter and
// verifies it with a ping.
func InitRedis() (*redis.Client, error) {
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	Logger.Info("Connected to Redis")
	return client, nil
}
