package update_availability

import (
	"context"

	updateAvailability "github.com/m04kA/SMC-TaxiBooking/internal/usecase/update_availability"
)

type UpdateAvailabilityUseCase interface {
	Execute(ctx context.Context, req *updateAvailability.Request) (*updateAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
