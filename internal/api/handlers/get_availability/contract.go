package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

type AvailabilityService interface {
	GetDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error)
	GetRange(ctx context.Context, r domain.DateRange) ([]*domain.AvailabilityRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
