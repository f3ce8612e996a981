package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда на (дату, слот) уже есть активное бронирование
	ErrSlotTaken = errors.New("booking.repository: slot already has an active booking")

	// ErrDuplicateBookingNumber возвращается при совпадении номера бронирования
	ErrDuplicateBookingNumber = errors.New("booking.repository: duplicate booking number")

	// ErrStatusConflict возвращается, когда статус бронирования изменился до обновления
	ErrStatusConflict = errors.New("booking.repository: booking status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
