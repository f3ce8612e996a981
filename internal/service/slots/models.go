package slots

import (
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// Reservation подтверждение того, что флаг слота закрыт под новое бронирование
// Действительна только внутри транзакции, в которой получена
type Reservation struct {
	Date time.Time
	Slot domain.Slot
}

const (
	resultReserved    = "reserved"
	resultUnavailable = "unavailable"
	resultError       = "error"
)
