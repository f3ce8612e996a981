package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	dashboardCache "github.com/m04kA/SMC-TaxiBooking/internal/infra/cache/dashboard"
)

// Service агрегатор дашборда, только чтение
type Service struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	cache            Cache
	location         *time.Location
	defaultDays      int
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает агрегатор; cache может быть nil
func NewService(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	cache Cache,
	location *time.Location,
	defaultDays int,
	logger Logger,
) *Service {
	if defaultDays <= 0 {
		defaultDays = domain.DefaultDashboardDays
	}
	return &Service{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		cache:            cache,
		location:         location,
		defaultDays:      defaultDays,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Summarize строит сводку за диапазон дат включительно
// Пустой диапазон означает последние defaultDays дней, заканчивая сегодняшним днём
func (s *Service) Summarize(ctx context.Context, r domain.DateRange) (*domain.DashboardStats, error) {
	r, err := s.normalize(r)
	if err != nil {
		s.logger.Warn("Summarize: %v", err)
		return nil, err
	}

	from, to := r.From.Format(domain.DateFormat), r.To.Format(domain.DateFormat)

	if s.cache != nil {
		stats, err := s.cache.Get(ctx, r)
		if err == nil {
			s.logger.Info("Summarize: %s..%s served from cache", from, to)
			return stats, nil
		}
		if !errors.Is(err, dashboardCache.ErrCacheMiss) {
			s.logger.Warn("Summarize: cache read failed for %s..%s: %v", from, to, err)
		}
	}

	// Полуинтервал [from 00:00, to+1 00:00) в часовом поясе сервиса
	createdFrom := r.From
	createdTo := r.To.AddDate(0, 0, 1)

	var (
		bookings []*domain.Booking
		records  []*domain.AvailabilityRecord
	)

	// Бронирования и доступность читаются из одного снимка
	err = s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.ListCreatedBetween(txCtx, createdFrom, createdTo)
		if err != nil {
			s.logger.Error("Summarize: failed to list bookings %s..%s: %v", from, to, err)
			return fmt.Errorf("%w: Summarize - list bookings: %v", ErrInternal, err)
		}

		records, err = s.availabilityRepo.GetRange(txCtx, r.From, r.To)
		if err != nil {
			s.logger.Error("Summarize: failed to get availability %s..%s: %v", from, to, err)
			return fmt.Errorf("%w: Summarize - get availability: %v", ErrInternal, err)
		}
		return nil
	})
	if errors.Is(err, ErrInternal) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("Summarize: read transaction failed %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: Summarize - read transaction: %v", ErrInternal, err)
	}

	stats := aggregate(bookings, records, r, s.location)

	if s.cache != nil {
		if err := s.cache.Set(ctx, r, stats); err != nil {
			s.logger.Warn("Summarize: failed to cache %s..%s: %v", from, to, err)
		}
	}

	s.logger.Info("Summarize: %s..%s, bookings=%d, revenue=%s", from, to, stats.TotalBookings, stats.Revenue)
	return stats, nil
}

// SummarizeLast строит сводку за последние days дней, заканчивая сегодняшним днём
func (s *Service) SummarizeLast(ctx context.Context, days int) (*domain.DashboardStats, error) {
	if days <= 0 || days > domain.MaxAnalyticsRangeDays {
		s.logger.Warn("SummarizeLast: invalid days=%d", days)
		return nil, fmt.Errorf("%w: days must be within 1..%d", ErrInvalidRange, domain.MaxAnalyticsRangeDays)
	}

	today := domain.TruncateDate(s.timeProvider.Now(), s.location)
	return s.Summarize(ctx, domain.LastDays(today, days))
}

func (s *Service) normalize(r domain.DateRange) (domain.DateRange, error) {
	if r.IsZero() {
		today := domain.TruncateDate(s.timeProvider.Now(), s.location)
		return domain.LastDays(today, s.defaultDays), nil
	}

	if r.From.IsZero() || r.To.IsZero() {
		return r, fmt.Errorf("%w: both bounds are required", ErrInvalidRange)
	}

	r = domain.DateRange{
		From: domain.CalendarDay(r.From, s.location),
		To:   domain.CalendarDay(r.To, s.location),
	}

	if r.To.Before(r.From) {
		return r, fmt.Errorf("%w: from after to", ErrInvalidRange)
	}
	if r.Days() > domain.MaxAnalyticsRangeDays {
		return r, fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, domain.MaxAnalyticsRangeDays)
	}

	return r, nil
}
