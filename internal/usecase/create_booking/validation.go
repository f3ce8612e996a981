package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// validated разобранные значения запроса
type validated struct {
	date     time.Time
	slot     domain.Slot
	tripType domain.TripType
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, loc *time.Location) (*validated, error) {
	required := []struct {
		field string
		value string
	}{
		{"customerName", req.CustomerName},
		{"customerEmail", req.CustomerEmail},
		{"customerPhone", req.CustomerPhone},
		{"pickupAddress", req.PickupAddress},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidInput, r.field)
		}
	}

	if req.Passengers < domain.MinPassengers || req.Passengers > domain.MaxPassengers {
		return nil, fmt.Errorf("%w: passengers must be between %d and %d",
			ErrInvalidInput, domain.MinPassengers, domain.MaxPassengers)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.PromoCode != nil && utf8.RuneCountInString(*req.PromoCode) > domain.MaxPromoCodeLength {
		return nil, fmt.Errorf("%w: promo code exceeds %d characters", ErrInvalidInput, domain.MaxPromoCodeLength)
	}

	// Проверяем, что дата не является нулевой
	if req.PickupDate.IsZero() {
		return nil, fmt.Errorf("%w: pickupDate is required", ErrInvalidInput)
	}

	slot, err := domain.ParseSlot(req.PickupTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	tripType, err := domain.ParseTripType(req.TripType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &validated{
		date:     domain.CalendarDay(req.PickupDate, loc),
		slot:     slot,
		tripType: tripType,
	}, nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(pickupDate time.Time, now time.Time, loc *time.Location, advanceBookingDays int) error {
	today := domain.TruncateDate(now, loc)

	// Проверяем, что дата не в прошлом
	if pickupDate.Before(today) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := today.AddDate(0, 0, advanceBookingDays)
	if pickupDate.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
