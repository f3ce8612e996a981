package create_promo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
)

// CreatePromoRequest запрос на создание промокода
// Active по умолчанию true
type CreatePromoRequest struct {
	Code            string           `json:"code" validate:"required,max=32"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	DiscountFlat    *decimal.Decimal `json:"discountFlat"`
	MaxUses         int              `json:"maxUses" validate:"gte=0"`
	Active          *bool            `json:"active"`
	ValidFrom       *time.Time       `json:"validFrom"`
	ValidTo         *time.Time       `json:"validTo"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *CreatePromoRequest) ToServiceRequest() *promo.CreateRequest {
	req := &promo.CreateRequest{
		Code:      r.Code,
		MaxUses:   r.MaxUses,
		Active:    true,
		ValidFrom: r.ValidFrom,
		ValidTo:   r.ValidTo,
	}

	if r.DiscountPercent != nil {
		req.DiscountPercent = *r.DiscountPercent
	}
	if r.DiscountFlat != nil {
		req.DiscountFlat = *r.DiscountFlat
	}
	if r.Active != nil {
		req.Active = *r.Active
	}

	return req
}
