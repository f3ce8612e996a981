package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-TaxiBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName" validate:"required,max=200"`
	CustomerEmail string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone string  `json:"customerPhone" validate:"required,max=32"`
	PickupAddress string  `json:"pickupAddress" validate:"required,max=500"`
	FlightNumber  *string `json:"flightNumber,omitempty" validate:"omitempty,max=16"`
	Passengers    int     `json:"passengers" validate:"min=1,max=8"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	PickupDate    string  `json:"pickupDate" validate:"required"`
	PickupTime    string  `json:"pickupTime" validate:"required,oneof=morning evening"`
	TripType      string  `json:"tripType" validate:"required,oneof=home_to_airport airport_to_home"`
	PromoCode     *string `json:"promoCode,omitempty" validate:"omitempty,max=32"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	pickupDate, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		PickupAddress: r.PickupAddress,
		FlightNumber:  r.FlightNumber,
		Passengers:    r.Passengers,
		Notes:         r.Notes,
		PickupDate:    pickupDate,
		PickupTime:    r.PickupTime,
		TripType:      r.TripType,
		PromoCode:     r.PromoCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
