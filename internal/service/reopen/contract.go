package reopen

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// AvailabilityRepository интерфейс хранилища доступности слотов
type AvailabilityRepository interface {
	Ensure(ctx context.Context, date time.Time) error
	GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error)
	OpenSlot(ctx context.Context, date time.Time, slot domain.Slot, releaseOccupant bool) (bool, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetSlotOccupants(ctx context.Context, date time.Time, slot domain.Slot) ([]*domain.Booking, error)
	CancelAndRefund(ctx context.Context, id uuid.UUID) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики исходов принудительного открытия
type Metrics interface {
	IncCascadeReopen(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
