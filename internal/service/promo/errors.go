package promo

import "errors"

var (
	// ErrPromoNotFound возвращается, когда промокод не найден или неактивен
	ErrPromoNotFound = errors.New("promo: promo code not found")

	// ErrPromoExpired возвращается вне периода действия промокода
	ErrPromoExpired = errors.New("promo: promo code expired")

	// ErrPromoLimitReached возвращается, когда лимит использований исчерпан
	ErrPromoLimitReached = errors.New("promo: promo code usage limit reached")

	// ErrPromoAlreadyExists возвращается при создании дубликата
	ErrPromoAlreadyExists = errors.New("promo: promo code already exists")

	// ErrInvalidInput возвращается при некорректных условиях промокода
	ErrInvalidInput = errors.New("promo: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("promo: internal error")
)
