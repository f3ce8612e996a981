package update_promo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
)

// UpdatePromoRequest частичное изменение промокода, отсутствующие поля не меняются
type UpdatePromoRequest struct {
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	DiscountFlat    *decimal.Decimal `json:"discountFlat"`
	MaxUses         *int             `json:"maxUses" validate:"omitempty,gte=0"`
	Active          *bool            `json:"active"`
	ValidFrom       *time.Time       `json:"validFrom"`
	ValidTo         *time.Time       `json:"validTo"`
	ClearValidFrom  bool             `json:"clearValidFrom"`
	ClearValidTo    bool             `json:"clearValidTo"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *UpdatePromoRequest) ToServiceRequest() *promo.UpdateRequest {
	return &promo.UpdateRequest{
		DiscountPercent: r.DiscountPercent,
		DiscountFlat:    r.DiscountFlat,
		MaxUses:         r.MaxUses,
		Active:          r.Active,
		ValidFrom:       r.ValidFrom,
		ValidTo:         r.ValidTo,
		ClearValidFrom:  r.ClearValidFrom,
		ClearValidTo:    r.ClearValidTo,
	}
}
