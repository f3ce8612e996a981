package promo

import (
	"context"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	Update(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	List(ctx context.Context) ([]*domain.PromoCode, error)
	IncrementUsage(ctx context.Context, id int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики погашения промокодов
type Metrics interface {
	IncPromoRedemption(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
