package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата подачи в прошлом
	ErrInvalidDate = errors.New("create_booking: pickup date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят или закрыт
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPromoNotFound возвращается, когда промокод не найден или выключен
	ErrPromoNotFound = errors.New("create_booking: promo code not found")

	// ErrPromoExpired возвращается вне периода действия промокода
	ErrPromoExpired = errors.New("create_booking: promo code expired")

	// ErrPromoLimitReached возвращается, когда лимит промокода исчерпан
	ErrPromoLimitReached = errors.New("create_booking: promo code usage limit reached")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
