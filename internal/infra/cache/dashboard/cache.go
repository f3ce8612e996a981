package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

const keyPrefix = "taxi:dashboard:"

// Cache кеш сводок дашборда в Redis с ограниченным TTL
type Cache struct {
	client Client
	ttl    time.Duration
}

// NewCache создает кеш сводок
func NewCache(client Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает сводку за диапазон или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, r domain.DateRange) (*domain.DashboardStats, error) {
	data, err := c.client.Get(ctx, key(r)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCache, err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("%w: Get - decode: %v", ErrCache, err)
	}

	return &stats, nil
}

// Set сохраняет сводку за диапазон
func (c *Cache) Set(ctx context.Context, r domain.DateRange, stats *domain.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, key(r), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCache, err)
	}

	return nil
}

func key(r domain.DateRange) string {
	return keyPrefix + r.From.Format(domain.DateFormat) + ":" + r.To.Format(domain.DateFormat)
}
