package get_analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/dashboard"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/dashboard/models"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Summarize(ctx context.Context, r domain.DateRange) (*domain.DashboardStats, error) {
	args := m.Called(ctx, r)
	stats, _ := args.Get(0).(*domain.DashboardStats)
	return stats, args.Error(1)
}

func (m *mockService) SummarizeLast(ctx context.Context, days int) (*domain.DashboardStats, error) {
	args := m.Called(ctx, days)
	stats, _ := args.Get(0).(*domain.DashboardStats)
	return stats, args.Error(1)
}

var (
	from = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
)

func get(h *Handler, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics"+query, nil))
	return w
}

func TestHandle_Range(t *testing.T) {
	svc := &mockService{}
	svc.On("Summarize", mock.Anything, domain.DateRange{From: from, To: to}).
		Return(&domain.DashboardStats{From: from, To: to, TotalBookings: 3, Revenue: decimal.RequireFromString("95.5")}, nil)

	w := get(NewHandler(svc, logger.NewNop()), "?from=2025-03-01&to=2025-03-07")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-01", resp.From)
	assert.Equal(t, "95.50", resp.Revenue)
	assert.Equal(t, 3, resp.TotalBookings)
}

func TestHandle_Days(t *testing.T) {
	svc := &mockService{}
	svc.On("SummarizeLast", mock.Anything, 30).Return(&domain.DashboardStats{From: from, To: to}, nil)

	w := get(NewHandler(svc, logger.NewNop()), "?days=30")
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		setup func(svc *mockService)
		want  int
	}{
		{name: "days not a number", query: "?days=week", want: http.StatusBadRequest},
		{name: "bad date", query: "?from=01.03.2025&to=2025-03-07", want: http.StatusBadRequest},
		{
			name:  "range rejected",
			query: "?from=2025-03-07&to=2025-03-01",
			setup: func(svc *mockService) {
				svc.On("Summarize", mock.Anything, mock.Anything).Return(nil, dashboard.ErrInvalidRange)
			},
			want: http.StatusBadRequest,
		},
		{
			name:  "days rejected",
			query: "?days=1000",
			setup: func(svc *mockService) {
				svc.On("SummarizeLast", mock.Anything, 1000).Return(nil, dashboard.ErrInvalidRange)
			},
			want: http.StatusBadRequest,
		},
		{
			name:  "internal",
			query: "",
			setup: func(svc *mockService) {
				svc.On("Summarize", mock.Anything, domain.DateRange{}).Return(nil, dashboard.ErrInternal)
			},
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := get(NewHandler(svc, logger.NewNop()), tt.query)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
