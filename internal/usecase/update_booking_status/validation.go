package update_booking_status

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает целевой статус
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.BookingID == uuid.Nil {
		return "", fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.BookingNumber != nil {
		if strings.TrimSpace(*req.BookingNumber) == "" {
			return "", fmt.Errorf("%w: bookingNumber is required", ErrInvalidInput)
		}
		if target != domain.StatusCancelled {
			return "", ErrCancelOnly
		}
	}

	return target, nil
}
