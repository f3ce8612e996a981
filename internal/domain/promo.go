package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PromoCode is a discount code of the promo ledger
// MaxUses = 0 means unlimited usage
type PromoCode struct {
	ID              int64
	Code            string
	DiscountPercent decimal.Decimal
	DiscountFlat    decimal.Decimal
	MaxUses         int
	UsedCount       int
	Active          bool
	ValidFrom       *time.Time
	ValidTo         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizePromoCode trims and upper-cases a code
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsUnlimited returns true if the code has no usage limit
func (p *PromoCode) IsUnlimited() bool {
	return p.MaxUses == 0
}

// IsExhausted returns true if every use of the code has been redeemed
func (p *PromoCode) IsExhausted() bool {
	return !p.IsUnlimited() && p.UsedCount >= p.MaxUses
}

// IsWithinWindow returns true if now is inside [ValidFrom, ValidTo]; open bounds are unlimited
func (p *PromoCode) IsWithinWindow(now time.Time) bool {
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidTo != nil && now.After(*p.ValidTo) {
		return false
	}
	return true
}

// RemainingUses returns the uses left, -1 for unlimited codes
func (p *PromoCode) RemainingUses() int {
	if p.IsUnlimited() {
		return -1
	}
	if left := p.MaxUses - p.UsedCount; left > 0 {
		return left
	}
	return 0
}

// PromoApplication is the result of applying a code to a base amount
type PromoApplication struct {
	AppliedCode      string
	BaseAmount       decimal.Decimal
	DiscountAmount   decimal.Decimal
	DiscountedAmount decimal.Decimal
}
