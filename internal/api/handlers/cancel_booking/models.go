package cancel_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	updateStatus "github.com/m04kA/SMC-TaxiBooking/internal/usecase/update_booking_status"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	BookingNumber string `json:"bookingNumber" validate:"required"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID uuid.UUID) *updateStatus.Request {
	number := r.BookingNumber
	return &updateStatus.Request{
		BookingID:     bookingID,
		Status:        string(domain.StatusCancelled),
		BookingNumber: &number,
	}
}
