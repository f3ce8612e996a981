package dashboard

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client команды Redis, которые использует кеш (*redis.Client)
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}
