package infra

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis builds the client for the per-user snapshot mirror. The mirror
// is a fallback, never the source of truth, so a missing server only
// surfaces when a read falls back to it.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
