package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard list cache keys, one per outpass variant.
const (
	HomeVisitListKey = "outpass:home_visits"
	OutingListKey    = "outpass:outings"

	listTTL = 30 * time.Second
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional; every
// accessor degrades to a no-op when the client is nil.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Available reports whether a Redis connection was established at startup.
func Available() bool {
	return client != nil
}

// GetList returns a cached dashboard list body, if present.
func GetList(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetList caches a dashboard list body for a short window.
func SetList(ctx context.Context, key string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, listTTL)
}

// InvalidateList drops a cached list after a create, mark or delete.
func InvalidateList(ctx context.Context, key string) {
	if client == nil {
		return
	}
	client.Del(ctx, key)
}
