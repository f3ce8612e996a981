package slots

import "errors"

var (
	// ErrSlotUnavailable возвращается, когда слот уже занят активным бронированием или закрыт
	ErrSlotUnavailable = errors.New("slots: slot unavailable")

	// ErrInvalidSlot возвращается для неизвестного слота
	ErrInvalidSlot = errors.New("slots: invalid slot")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
