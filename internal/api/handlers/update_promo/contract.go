package update_promo

import (
	"context"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
)

type PromoService interface {
	Update(ctx context.Context, code string, req *promo.UpdateRequest) (*domain.PromoCode, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
