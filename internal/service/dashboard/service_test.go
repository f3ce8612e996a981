package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	dashboardCache "github.com/m04kA/SMC-TaxiBooking/internal/infra/cache/dashboard"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, from, to)
	list, _ := args.Get(0).([]*domain.Booking)
	return list, args.Error(1)
}

type mockAvailabilityRepo struct{ mock.Mock }

func (m *mockAvailabilityRepo) GetRange(ctx context.Context, from, to time.Time) ([]*domain.AvailabilityRecord, error) {
	args := m.Called(ctx, from, to)
	recs, _ := args.Get(0).([]*domain.AvailabilityRecord)
	return recs, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, r domain.DateRange) (*domain.DashboardStats, error) {
	args := m.Called(ctx, r)
	stats, _ := args.Get(0).(*domain.DashboardStats)
	return stats, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, r domain.DateRange, stats *domain.DashboardStats) error {
	return m.Called(ctx, r, stats).Error(0)
}

type readOnlyTx struct {
	calls int
	err   error
}

func (tx *readOnlyTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {}
func (l *recordingLogger) Error(format string, v ...interface{}) {}
func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var day1 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func booking(created time.Time, status domain.BookingStatus, payment domain.PaymentStatus, price string) *domain.Booking {
	return &domain.Booking{
		Status:        status,
		PaymentStatus: payment,
		TripType:      domain.TripHomeToAirport,
		Price:         decimal.RequireFromString(price),
		CreatedAt:     created,
	}
}

func TestAggregate(t *testing.T) {
	r := domain.DateRange{From: day1, To: day1.AddDate(0, 0, 2)}
	code := "SPRING"

	promoted := booking(day1.Add(10*time.Hour), domain.StatusConfirmed, domain.PaymentPending, "36.00")
	promoted.PromoCode = &code
	promoted.PromoDiscountAmount = decimal.RequireFromString("9.00")

	bookings := []*domain.Booking{
		promoted,
		booking(day1.Add(12*time.Hour), domain.StatusPending, domain.PaymentPaid, "45.00"),
		booking(day1.AddDate(0, 0, 2).Add(time.Hour), domain.StatusPending, domain.PaymentPending, "50.00"),
		booking(day1.AddDate(0, 0, 2).Add(2*time.Hour), domain.StatusCancelled, domain.PaymentPaid, "45.00"),
		booking(day1.AddDate(0, 0, 2).Add(3*time.Hour), domain.StatusCompleted, domain.PaymentRefunded, "45.00"),
	}
	records := []*domain.AvailabilityRecord{
		{Date: day1, MorningOpen: false, EveningOpen: true},
		{Date: day1.AddDate(0, 0, 1), MorningOpen: false, EveningOpen: false},
	}

	stats := aggregate(bookings, records, r, time.UTC)

	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 2, stats.ByStatus[domain.StatusPending])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusConfirmed])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusCancelled])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusCompleted])
	assert.Equal(t, 5, stats.ByTripType[domain.TripHomeToAirport])
	assert.Equal(t, 0, stats.ByTripType[domain.TripAirportToHome])
	assert.Equal(t, 2, stats.ByPaymentStatus[domain.PaymentPaid])
	assert.Equal(t, 0, stats.ByPaymentStatus[domain.PaymentFailed])

	// confirmed 36.00 + paid 45.00
	assert.Equal(t, "81.00", stats.Revenue.StringFixed(2))
	assert.Equal(t, 1, stats.PromoBookings)
	assert.Equal(t, "9.00", stats.PromoDiscountTotal.StringFixed(2))

	// день без записи считается открытым
	assert.Equal(t, 3, stats.OpenSlots)
	assert.Equal(t, 3, stats.ClosedSlots)

	require.Len(t, stats.Trend, 3)
	assert.Equal(t, 2, stats.Trend[0].Bookings)
	assert.Equal(t, "81.00", stats.Trend[0].Revenue.StringFixed(2))
	assert.Equal(t, 0, stats.Trend[1].Bookings)
	assert.True(t, stats.Trend[1].Revenue.IsZero())
	assert.Equal(t, 3, stats.Trend[2].Bookings)
	assert.True(t, stats.Trend[2].Revenue.IsZero())
}

func TestAggregate_Empty(t *testing.T) {
	r := domain.DateRange{From: day1, To: day1}

	stats := aggregate(nil, nil, r, time.UTC)

	assert.Zero(t, stats.TotalBookings)
	assert.True(t, stats.Revenue.IsZero())
	assert.Equal(t, 2, stats.OpenSlots)
	assert.Zero(t, stats.ClosedSlots)
	require.Len(t, stats.Trend, 1)
	assert.Len(t, stats.ByStatus, len(domain.BookingStatuses))
}

func TestSummarize_DefaultRange(t *testing.T) {
	bookings := &mockBookingRepo{}
	availability := &mockAvailabilityRepo{}
	svc := NewService(bookings, availability, &readOnlyTx{}, nil, time.UTC, 7, logger.NewNop())
	svc.timeProvider = fixedTime{t: day1.AddDate(0, 0, 6).Add(15 * time.Hour)}
	ctx := context.Background()

	to := day1.AddDate(0, 0, 6)
	bookings.On("ListCreatedBetween", ctx, day1, to.AddDate(0, 0, 1)).Return([]*domain.Booking{}, nil).Once()
	availability.On("GetRange", ctx, day1, to).Return([]*domain.AvailabilityRecord{}, nil).Once()

	stats, err := svc.Summarize(ctx, domain.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, day1, stats.From)
	assert.Equal(t, to, stats.To)
	assert.Len(t, stats.Trend, 7)
	assert.Equal(t, 14, stats.OpenSlots)
	bookings.AssertExpectations(t)
	availability.AssertExpectations(t)
}

func TestSummarize_InvalidRange(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, &mockAvailabilityRepo{}, &readOnlyTx{}, nil, time.UTC, 7, logger.NewNop())
	ctx := context.Background()

	tests := []struct {
		name string
		r    domain.DateRange
	}{
		{name: "from after to", r: domain.DateRange{From: day1.AddDate(0, 0, 1), To: day1}},
		{name: "missing to", r: domain.DateRange{From: day1}},
		{name: "too long", r: domain.DateRange{From: day1, To: day1.AddDate(0, 0, domain.MaxAnalyticsRangeDays)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Summarize(ctx, tt.r)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestSummarize_RepositoryError(t *testing.T) {
	bookings := &mockBookingRepo{}
	svc := NewService(bookings, &mockAvailabilityRepo{}, &readOnlyTx{}, nil, time.UTC, 7, logger.NewNop())
	ctx := context.Background()

	bookings.On("ListCreatedBetween", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Summarize(ctx, domain.DateRange{From: day1, To: day1})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSummarize_CacheHit(t *testing.T) {
	bookings := &mockBookingRepo{}
	availability := &mockAvailabilityRepo{}
	cache := &mockCache{}
	svc := NewService(bookings, availability, &readOnlyTx{}, cache, time.UTC, 7, logger.NewNop())
	ctx := context.Background()
	r := domain.DateRange{From: day1, To: day1}

	cached := &domain.DashboardStats{From: day1, To: day1, TotalBookings: 42}
	cache.On("Get", ctx, r).Return(cached, nil).Once()

	stats, err := svc.Summarize(ctx, r)
	require.NoError(t, err)

	assert.Same(t, cached, stats)
	bookings.AssertNotCalled(t, "ListCreatedBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummarize_CacheMissStoresResult(t *testing.T) {
	bookings := &mockBookingRepo{}
	availability := &mockAvailabilityRepo{}
	cache := &mockCache{}
	svc := NewService(bookings, availability, &readOnlyTx{}, cache, time.UTC, 7, logger.NewNop())
	ctx := context.Background()
	r := domain.DateRange{From: day1, To: day1}

	cache.On("Get", ctx, r).Return(nil, dashboardCache.ErrCacheMiss).Once()
	bookings.On("ListCreatedBetween", ctx, day1, day1.AddDate(0, 0, 1)).Return([]*domain.Booking{}, nil).Once()
	availability.On("GetRange", ctx, day1, day1).Return([]*domain.AvailabilityRecord{}, nil).Once()
	// ошибка записи в кеш не ломает ответ
	cache.On("Set", ctx, r, mock.AnythingOfType("*domain.DashboardStats")).Return(errors.New("redis down")).Once()

	stats, err := svc.Summarize(ctx, r)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.OpenSlots)
	cache.AssertExpectations(t)
}

func TestSummarizeLast(t *testing.T) {
	bookings := &mockBookingRepo{}
	availability := &mockAvailabilityRepo{}
	svc := NewService(bookings, availability, &readOnlyTx{}, nil, time.UTC, 7, logger.NewNop())
	svc.timeProvider = fixedTime{t: day1.AddDate(0, 0, 29).Add(9 * time.Hour)}
	ctx := context.Background()

	to := day1.AddDate(0, 0, 29)
	bookings.On("ListCreatedBetween", ctx, day1, to.AddDate(0, 0, 1)).Return([]*domain.Booking{}, nil).Once()
	availability.On("GetRange", ctx, day1, to).Return([]*domain.AvailabilityRecord{}, nil).Once()

	stats, err := svc.SummarizeLast(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, stats.Trend, 30)

	for _, days := range []int{0, -1, domain.MaxAnalyticsRangeDays + 1} {
		_, err := svc.SummarizeLast(ctx, days)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestSummarize_ReadsInOneReadOnlyTransaction(t *testing.T) {
	bookings := &mockBookingRepo{}
	availability := &mockAvailabilityRepo{}
	cache := &mockCache{}
	tx := &readOnlyTx{}
	svc := NewService(bookings, availability, tx, cache, time.UTC, 7, logger.NewNop())
	ctx := context.Background()
	r := domain.DateRange{From: day1, To: day1}

	cache.On("Get", ctx, r).Return(nil, dashboardCache.ErrCacheMiss).Once()
	cache.On("Set", ctx, r, mock.Anything).Return(nil).Once()
	bookings.On("ListCreatedBetween", ctx, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil).Once()
	availability.On("GetRange", ctx, day1, day1).Return([]*domain.AvailabilityRecord{}, nil).Once()

	_, err := svc.Summarize(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)

	cached := &domain.DashboardStats{From: day1, To: day1}
	cache.On("Get", ctx, r).Return(cached, nil).Once()

	_, err = svc.Summarize(ctx, r)
	require.NoError(t, err)
	// ответ из кеша не открывает транзакцию
	assert.Equal(t, 1, tx.calls)
}

func TestSummarize_ReadTransactionError(t *testing.T) {
	tx := &readOnlyTx{err: errors.New("begin failed")}
	bookings := &mockBookingRepo{}
	svc := NewService(bookings, &mockAvailabilityRepo{}, tx, nil, time.UTC, 7, logger.NewNop())

	_, err := svc.Summarize(context.Background(), domain.DateRange{From: day1, To: day1})
	assert.ErrorIs(t, err, ErrInternal)
	bookings.AssertNotCalled(t, "ListCreatedBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummarize_CacheReadErrorIsLogged(t *testing.T) {
	tests := []struct {
		name     string
		cacheErr error
		warnings int
	}{
		{name: "miss", cacheErr: dashboardCache.ErrCacheMiss, warnings: 0},
		{name: "redis down", cacheErr: fmt.Errorf("%w: Get - connection refused", dashboardCache.ErrCache), warnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &mockBookingRepo{}
			availability := &mockAvailabilityRepo{}
			cache := &mockCache{}
			log := &recordingLogger{}
			svc := NewService(bookings, availability, &readOnlyTx{}, cache, time.UTC, 7, log)
			ctx := context.Background()
			r := domain.DateRange{From: day1, To: day1}

			cache.On("Get", ctx, r).Return(nil, tt.cacheErr).Once()
			cache.On("Set", ctx, r, mock.Anything).Return(nil).Once()
			bookings.On("ListCreatedBetween", ctx, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil).Once()
			availability.On("GetRange", ctx, day1, day1).Return([]*domain.AvailabilityRecord{}, nil).Once()

			stats, err := svc.Summarize(ctx, r)
			require.NoError(t, err)
			assert.NotNil(t, stats)
			assert.Len(t, log.warnings, tt.warnings)
		})
	}
}
