package promo

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequest условия нового промокода
type CreateRequest struct {
	Code            string
	DiscountPercent decimal.Decimal
	DiscountFlat    decimal.Decimal
	MaxUses         int
	Active          bool
	ValidFrom       *time.Time
	ValidTo         *time.Time
}

// UpdateRequest частичное изменение условий, nil поля не меняются
type UpdateRequest struct {
	DiscountPercent *decimal.Decimal
	DiscountFlat    *decimal.Decimal
	MaxUses         *int
	Active          *bool
	ValidFrom       *time.Time
	ValidTo         *time.Time
	ClearValidFrom  bool
	ClearValidTo    bool
}

const (
	resultRedeemed     = "redeemed"
	resultNotFound     = "not_found"
	resultExpired      = "expired"
	resultLimitReached = "limit_reached"
	resultError        = "error"
)
