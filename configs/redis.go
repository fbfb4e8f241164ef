package configs

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis for the sign-out revocation list and
// the dashboard report cache. Returns nil when no address is configured;
// both consumers tolerate that.
func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		log.Println("redis not configured; sign-out revocation and report cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return rdb
}
