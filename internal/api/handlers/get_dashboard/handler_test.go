package get_dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/dashboard/models"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Summarize(ctx context.Context, r domain.DateRange) (*domain.DashboardStats, error) {
	args := m.Called(ctx, r)
	stats, _ := args.Get(0).(*domain.DashboardStats)
	return stats, args.Error(1)
}

func get(h *Handler) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	// пустой диапазон означает период по умолчанию
	svc.On("Summarize", mock.Anything, domain.DateRange{}).
		Return(&domain.DashboardStats{
			From:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			To:            time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC),
			TotalBookings: 3,
			ByStatus:      map[domain.BookingStatus]int{domain.StatusConfirmed: 2, domain.StatusCancelled: 1},
			Revenue:       decimal.NewFromInt(120),
		}, nil)
	h := NewHandler(svc, logger.NewNop())

	w := get(h)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-01", resp.From)
	assert.Equal(t, 3, resp.TotalBookings)
	assert.Equal(t, 2, resp.ByStatus[string(domain.StatusConfirmed)])
	assert.Equal(t, "120.00", resp.Revenue)
	svc.AssertExpectations(t)
}

func TestHandle_Error(t *testing.T) {
	svc := &mockService{}
	svc.On("Summarize", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	h := NewHandler(svc, logger.NewNop())

	w := get(h)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
