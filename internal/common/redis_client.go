package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"field-ministry/campo/internal/logging"
)

func NewRedisClient(addr, password string) *redis.Client {
	redisDB := 0 // Default DB

	logging.Info("Initializing Redis client", "addr", addr, "db", redisDB)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           redisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// the pool reconnects on demand, so a cold Redis is not fatal
		logging.Warn("Failed to ping Redis", "error", err)
		return client
	}

	logging.Info("Connected to Redis")
	return client
}
