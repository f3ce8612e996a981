package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// AvailabilityRepository интерфейс хранилища доступности слотов
type AvailabilityRepository interface {
	Ensure(ctx context.Context, date time.Time) error
	GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error)
	CloseSlot(ctx context.Context, date time.Time, slot domain.Slot) (bool, error)
	OpenSlot(ctx context.Context, date time.Time, slot domain.Slot, releaseOccupant bool) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики исходов резервирования
type Metrics interface {
	IncSlotReservation(slot, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
