package update_booking_status

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// Request модель запроса на смену статуса
type Request struct {
	BookingID uuid.UUID // ID бронирования
	Status    string    // Новый статус

	// BookingNumber задаётся клиентом при отмене; nil для оператора
	BookingNumber *string
}

// Response модель ответа со статусом после операции
type Response struct {
	Booking      *domain.Booking
	Changed      bool // false, если бронирование уже было в запрошенном статусе
	SlotReleased bool // слот открыт этой операцией
}
