package reopen

import "github.com/google/uuid"

// Result итог принудительного открытия слота
type Result struct {
	Reopened           bool       // Слот открыт после операции
	CancelledBookingID *uuid.UUID // Отменённое бронирование, если слот кто-то удерживал
	WasOpen            bool       // Слот был открыт до операции
}

const (
	outcomeNoop      = "noop"
	outcomeOpened    = "opened"
	outcomeCancelled = "cancelled"
	outcomeError     = "error"
)
