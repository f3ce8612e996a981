package list_promo

import (
	"context"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

type PromoService interface {
	List(ctx context.Context) ([]*domain.PromoCode, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
