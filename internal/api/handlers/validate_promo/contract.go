package validate_promo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

type PromoService interface {
	Preview(ctx context.Context, code string, base decimal.Decimal, now time.Time) (*domain.PromoApplication, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
