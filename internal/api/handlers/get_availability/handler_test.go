package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/availability"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error) {
	args := m.Called(ctx, date)
	rec, _ := args.Get(0).(*domain.AvailabilityRecord)
	return rec, args.Error(1)
}

func (m *mockService) GetRange(ctx context.Context, r domain.DateRange) ([]*domain.AvailabilityRecord, error) {
	args := m.Called(ctx, r)
	recs, _ := args.Get(0).([]*domain.AvailabilityRecord)
	return recs, args.Error(1)
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/availability"+query, nil)
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_SingleDate(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("GetDate", mock.Anything, date).
		Return(&domain.AvailabilityRecord{Date: date, MorningOpen: false, EveningOpen: true}, nil)
	h := NewHandler(svc, logger.NewNop())

	w := get(h, "?date=2025-03-01")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, AvailabilityResponse{Date: "2025-03-01", MorningOpen: false, EveningOpen: true}, resp)
}

func TestHandle_Range(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("GetRange", mock.Anything, domain.DateRange{From: from, To: to}).
		Return([]*domain.AvailabilityRecord{
			{Date: from, MorningOpen: true, EveningOpen: true},
			{Date: to, MorningOpen: false, EveningOpen: true},
		}, nil)
	h := NewHandler(svc, logger.NewNop())

	w := get(h, "?from=2025-03-01&to=2025-03-02")
	require.Equal(t, http.StatusOK, w.Code)

	var resp RangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-01", resp.From)
	assert.Equal(t, "2025-03-02", resp.To)
	require.Len(t, resp.Days, 2)
	assert.False(t, resp.Days[1].MorningOpen)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		setup func(svc *mockService)
		want  int
	}{
		{name: "no params", query: "", want: http.StatusBadRequest},
		{name: "bad date", query: "?date=01.03.2025", want: http.StatusBadRequest},
		{name: "only from", query: "?from=2025-03-01", want: http.StatusBadRequest},
		{name: "bad range format", query: "?from=2025-03-01&to=tomorrow", want: http.StatusBadRequest},
		{
			name:  "inverted range",
			query: "?from=2025-03-05&to=2025-03-01",
			setup: func(svc *mockService) {
				svc.On("GetRange", mock.Anything, mock.Anything).Return(nil, availability.ErrInvalidRange)
			},
			want: http.StatusBadRequest,
		},
		{
			name:  "range internal",
			query: "?from=2025-03-01&to=2025-03-05",
			setup: func(svc *mockService) {
				svc.On("GetRange", mock.Anything, mock.Anything).Return(nil, availability.ErrInternal)
			},
			want: http.StatusInternalServerError,
		},
		{
			name:  "date internal",
			query: "?date=2025-03-01",
			setup: func(svc *mockService) {
				svc.On("GetDate", mock.Anything, mock.Anything).Return(nil, availability.ErrInternal)
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
			h := NewHandler(svc, logger.NewNop())

			w := get(h, tt.query)
			assert.Equal(t, tt.want, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
