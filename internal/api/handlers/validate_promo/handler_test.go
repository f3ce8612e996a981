package validate_promo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo/models"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Preview(ctx context.Context, code string, base decimal.Decimal, now time.Time) (*domain.PromoApplication, error) {
	args := m.Called(ctx, code, base, now)
	resp, _ := args.Get(0).(*domain.PromoApplication)
	return resp, args.Error(1)
}

var tariffs = map[domain.TripType]decimal.Decimal{
	domain.TripHomeToAirport: decimal.NewFromInt(45),
	domain.TripAirportToHome: decimal.NewFromInt(50),
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/promo/validate", strings.NewReader(body)))
	return w
}

func TestHandle_UsesTariffOfTripType(t *testing.T) {
	svc := &mockService{}
	svc.On("Preview", mock.Anything, "SPRING", decimal.NewFromInt(50), mock.Anything).
		Return(&domain.PromoApplication{
			AppliedCode:      "SPRING",
			BaseAmount:       decimal.NewFromInt(50),
			DiscountAmount:   decimal.NewFromInt(10),
			DiscountedAmount: decimal.NewFromInt(40),
		}, nil)

	w := post(NewHandler(svc, tariffs, logger.NewNop()), `{"code":"SPRING","tripType":"airport_to_home"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "10.00", resp.DiscountAmount)
	assert.Equal(t, "40.00", resp.DiscountedAmount)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "bad json", body: `{`, want: http.StatusBadRequest},
		{name: "unknown trip", body: `{"code":"A","tripType":"city"}`, want: http.StatusBadRequest},
		{name: "not found", body: `{"code":"A","tripType":"home_to_airport"}`, err: promo.ErrPromoNotFound, want: http.StatusUnprocessableEntity},
		{name: "expired", body: `{"code":"A","tripType":"home_to_airport"}`, err: promo.ErrPromoExpired, want: http.StatusUnprocessableEntity},
		{name: "limit", body: `{"code":"A","tripType":"home_to_airport"}`, err: promo.ErrPromoLimitReached, want: http.StatusUnprocessableEntity},
		{name: "internal", body: `{"code":"A","tripType":"home_to_airport"}`, err: promo.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.err != nil {
				svc.On("Preview", mock.Anything, "A", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			w := post(NewHandler(svc, tariffs, logger.NewNop()), tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
