package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BookingListResponse)
	return resp, args.Error(1)
}

func TestParseQuery(t *testing.T) {
	req, err := parseQuery(map[string][]string{
		"from":   {"2025-03-01"},
		"to":     {"2025-03-31"},
		"status": {"confirmed"},
	})
	require.NoError(t, err)
	require.NotNil(t, req.From)
	require.NotNil(t, req.To)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *req.From)
	assert.Equal(t, "confirmed", *req.Status)

	empty, err := parseQuery(nil)
	require.NoError(t, err)
	assert.Nil(t, empty.From)
	assert.Nil(t, empty.Status)

	_, err = parseQuery(map[string][]string{"from": {"01.03.2025"}})
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		want  int
	}{
		{name: "ok", query: "?status=PENDING", want: http.StatusOK},
		{name: "bad date", query: "?to=tomorrow", want: http.StatusBadRequest},
		{name: "bad status", query: "?status=LOST", err: bookings.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", query: "", err: bookings.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.err != nil {
				svc.On("List", mock.Anything, mock.Anything).Return(nil, tt.err)
			} else {
				svc.On("List", mock.Anything, mock.Anything).Return(&models.BookingListResponse{}, nil).Maybe()
			}

			w := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings"+tt.query, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
