package models

import (
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// PromoResponse ответ с условиями промокода
// Проценты и суммы передаются строками с двумя знаками после запятой
type PromoResponse struct {
	Code            string     `json:"code"`
	DiscountPercent string     `json:"discountPercent"`
	DiscountFlat    string     `json:"discountFlat"`
	MaxUses         int        `json:"maxUses"` // 0 - без ограничения
	UsedCount       int        `json:"usedCount"`
	RemainingUses   *int       `json:"remainingUses"` // null для безлимитных
	Active          bool       `json:"active"`
	ValidFrom       *time.Time `json:"validFrom,omitempty"`
	ValidTo         *time.Time `json:"validTo,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// PromoListResponse ответ со списком промокодов
type PromoListResponse struct {
	Promos []PromoResponse `json:"promos"`
	Total  int             `json:"total"`
}

// ApplicationResponse результат проверки промокода для суммы
type ApplicationResponse struct {
	AppliedCode      string `json:"appliedCode"`
	BaseAmount       string `json:"baseAmount"`
	DiscountAmount   string `json:"discountAmount"`
	DiscountedAmount string `json:"discountedAmount"`
}

// FromDomainPromo конвертирует domain модель в DTO
func FromDomainPromo(p *domain.PromoCode) *PromoResponse {
	if p == nil {
		return nil
	}

	resp := &PromoResponse{
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent.StringFixed(domain.MoneyPlaces),
		DiscountFlat:    p.DiscountFlat.StringFixed(domain.MoneyPlaces),
		MaxUses:         p.MaxUses,
		UsedCount:       p.UsedCount,
		Active:          p.Active,
		ValidFrom:       p.ValidFrom,
		ValidTo:         p.ValidTo,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if !p.IsUnlimited() {
		remaining := p.RemainingUses()
		resp.RemainingUses = &remaining
	}

	return resp
}

// FromDomainPromoList конвертирует список domain моделей в DTO
func FromDomainPromoList(promos []*domain.PromoCode) *PromoListResponse {
	resp := &PromoListResponse{Promos: make([]PromoResponse, 0, len(promos))}
	for _, p := range promos {
		if promoResp := FromDomainPromo(p); promoResp != nil {
			resp.Promos = append(resp.Promos, *promoResp)
		}
	}
	resp.Total = len(resp.Promos)
	return resp
}

// FromDomainApplication конвертирует результат применения в DTO
func FromDomainApplication(a *domain.PromoApplication) *ApplicationResponse {
	return &ApplicationResponse{
		AppliedCode:      a.AppliedCode,
		BaseAmount:       a.BaseAmount.StringFixed(domain.MoneyPlaces),
		DiscountAmount:   a.DiscountAmount.StringFixed(domain.MoneyPlaces),
		DiscountedAmount: a.DiscountedAmount.StringFixed(domain.MoneyPlaces),
	}
}
