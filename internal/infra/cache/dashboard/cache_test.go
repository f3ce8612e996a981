package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

type fakeClient struct {
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func testRange() domain.DateRange {
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return domain.DateRange{From: from, To: from.AddDate(0, 0, 6)}
}

func TestCache_SetGet(t *testing.T) {
	client := newFakeClient()
	cache := NewCache(client, time.Minute)
	r := testRange()

	stats := &domain.DashboardStats{
		From:          r.From,
		To:            r.To,
		TotalBookings: 3,
		ByStatus:      map[domain.BookingStatus]int{domain.StatusPending: 2, domain.StatusCancelled: 1},
		Revenue:       decimal.RequireFromString("90.50"),
	}

	require.NoError(t, cache.Set(context.Background(), r, stats))
	assert.Equal(t, time.Minute, client.ttls["taxi:dashboard:2025-09-01:2025-09-07"])

	got, err := cache.Get(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalBookings)
	assert.Equal(t, 2, got.ByStatus[domain.StatusPending])
	assert.True(t, got.Revenue.Equal(stats.Revenue))
}

func TestCache_Miss(t *testing.T) {
	cache := NewCache(newFakeClient(), time.Minute)

	_, err := cache.Get(context.Background(), testRange())
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_RedisError(t *testing.T) {
	client := newFakeClient()
	client.err = errors.New("connection refused")
	cache := NewCache(client, time.Minute)

	_, err := cache.Get(context.Background(), testRange())
	assert.ErrorIs(t, err, ErrCache)

	err = cache.Set(context.Background(), testRange(), &domain.DashboardStats{})
	assert.ErrorIs(t, err, ErrCache)
}
