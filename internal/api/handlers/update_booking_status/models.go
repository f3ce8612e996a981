package update_booking_status

import (
	"github.com/google/uuid"

	updateStatus "github.com/m04kA/SMC-TaxiBooking/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(bookingID uuid.UUID) *updateStatus.Request {
	return &updateStatus.Request{
		BookingID: bookingID,
		Status:    r.Status,
	}
}
