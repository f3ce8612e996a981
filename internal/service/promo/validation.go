package promo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

var maxPercent = decimal.NewFromInt(100)

// checkRedeemable проверяет промокод на момент now: активность, период действия, лимит
func checkRedeemable(p *domain.PromoCode, now time.Time) error {
	if !p.Active {
		return fmt.Errorf("%w: code %s is inactive", ErrPromoNotFound, p.Code)
	}
	if !p.IsWithinWindow(now) {
		return fmt.Errorf("%w: code %s", ErrPromoExpired, p.Code)
	}
	if p.IsExhausted() {
		return fmt.Errorf("%w: code %s used %d/%d", ErrPromoLimitReached, p.Code, p.UsedCount, p.MaxUses)
	}
	return nil
}

// validateTerms проверяет условия промокода, заданные оператором
func validateTerms(p *domain.PromoCode) error {
	if p.Code == "" || len(p.Code) > domain.MaxPromoCodeLength {
		return fmt.Errorf("%w: code must be 1..%d characters", ErrInvalidInput, domain.MaxPromoCodeLength)
	}
	if p.DiscountPercent.IsNegative() || p.DiscountPercent.GreaterThan(maxPercent) {
		return fmt.Errorf("%w: discount percent must be within 0..100", ErrInvalidInput)
	}
	if p.DiscountFlat.IsNegative() {
		return fmt.Errorf("%w: flat discount must not be negative", ErrInvalidInput)
	}
	if !p.DiscountPercent.IsPositive() && !p.DiscountFlat.IsPositive() {
		return fmt.Errorf("%w: percent or flat discount is required", ErrInvalidInput)
	}
	if p.MaxUses < 0 {
		return fmt.Errorf("%w: max uses must not be negative", ErrInvalidInput)
	}
	if p.MaxUses > 0 && p.MaxUses < p.UsedCount {
		return fmt.Errorf("%w: max uses %d below used count %d", ErrInvalidInput, p.MaxUses, p.UsedCount)
	}
	if p.ValidFrom != nil && p.ValidTo != nil && p.ValidTo.Before(*p.ValidFrom) {
		return fmt.Errorf("%w: valid_to before valid_from", ErrInvalidInput)
	}
	return nil
}
