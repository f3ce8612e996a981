package get_analytics

import (
	"context"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

type DashboardService interface {
	Summarize(ctx context.Context, r domain.DateRange) (*domain.DashboardStats, error)
	SummarizeLast(ctx context.Context, days int) (*domain.DashboardStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
