package update_booking_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или номер не совпал
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidTransition возвращается, когда переход статуса запрещён
	ErrInvalidTransition = errors.New("update_booking_status: status transition not allowed")

	// ErrCancelOnly возвращается, когда клиент запрашивает статус, отличный от CANCELLED
	ErrCancelOnly = errors.New("update_booking_status: customers may only cancel")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
