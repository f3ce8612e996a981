package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// AvailabilityRepository интерфейс хранилища доступности слотов
type AvailabilityRepository interface {
	Ensure(ctx context.Context, date time.Time) error
	GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error)
	GetRange(ctx context.Context, from, to time.Time) ([]*domain.AvailabilityRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
