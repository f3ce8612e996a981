package reopen

import "errors"

var (
	// ErrInvalidSlot возвращается для неизвестного слота
	ErrInvalidSlot = errors.New("reopen: invalid slot")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reopen: internal error")
)
