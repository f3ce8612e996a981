package create_promo

import (
	"context"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
)

type PromoService interface {
	Create(ctx context.Context, req *promo.CreateRequest) (*domain.PromoCode, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
