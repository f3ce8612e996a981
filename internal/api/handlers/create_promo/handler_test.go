package create_promo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Create(ctx context.Context, req *promo.CreateRequest) (*domain.PromoCode, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.PromoCode)
	return resp, args.Error(1)
}

func TestToServiceRequest_DefaultsActive(t *testing.T) {
	percent := decimal.NewFromInt(15)
	req := (&CreatePromoRequest{Code: "spring", DiscountPercent: &percent, MaxUses: 10}).ToServiceRequest()

	assert.True(t, req.Active)
	assert.True(t, req.DiscountPercent.Equal(percent))
	assert.True(t, req.DiscountFlat.IsZero())

	inactive := false
	assert.False(t, (&CreatePromoRequest{Code: "X", Active: &inactive}).ToServiceRequest().Active)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "created", body: `{"code":"SPRING","discountPercent":"20"}`, want: http.StatusCreated},
		{name: "missing code", body: `{"discountPercent":"20"}`, want: http.StatusBadRequest},
		{name: "negative uses", body: `{"code":"A","maxUses":-1}`, want: http.StatusBadRequest},
		{name: "invalid terms", body: `{"code":"A"}`, err: promo.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "duplicate", body: `{"code":"A","discountFlat":"5"}`, err: promo.ErrPromoAlreadyExists, want: http.StatusConflict},
		{name: "internal", body: `{"code":"A","discountFlat":"5"}`, err: promo.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.err != nil {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)
			} else {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(&domain.PromoCode{Code: "SPRING", DiscountPercent: decimal.NewFromInt(20), Active: true}, nil)
			}

			w := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(w,
				httptest.NewRequest(http.MethodPost, "/api/v1/admin/promo", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
