package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс хранилища доступности слотов
type AvailabilityRepository interface {
	GetRange(ctx context.Context, from, to time.Time) ([]*domain.AvailabilityRecord, error)
}

// TransactionManager интерфейс для чтения из одного снимка данных
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache кеш готовых сводок, может отсутствовать
type Cache interface {
	Get(ctx context.Context, r domain.DateRange) (*domain.DashboardStats, error)
	Set(ctx context.Context, r domain.DateRange, stats *domain.DashboardStats) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
