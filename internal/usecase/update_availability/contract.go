package update_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/reopen"
)

// AvailabilityRepository интерфейс хранилища доступности слотов
type AvailabilityRepository interface {
	Ensure(ctx context.Context, date time.Time) error
	GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error)
	BlockSlot(ctx context.Context, date time.Time, slot domain.Slot) (bool, error)
}

// Reopener интерфейс каскадного открытия слота
type Reopener interface {
	ForceOpen(ctx context.Context, date time.Time, slot domain.Slot) (*reopen.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
