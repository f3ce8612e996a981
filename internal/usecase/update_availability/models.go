package update_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// Request модель запроса оператора; nil флаг не меняется
type Request struct {
	Date        time.Time
	MorningOpen *bool
	EveningOpen *bool
}

// SlotChange итог изменения одного слота
type SlotChange struct {
	Slot               domain.Slot
	Open               bool       // запрошенное состояние
	Changed            bool       // флаг переключён этой операцией
	CancelledBookingID *uuid.UUID // бронирование, отменённое при открытии
}

// Response модель ответа с записью после изменения
type Response struct {
	Record  *domain.AvailabilityRecord
	Changes []SlotChange
}
