package models

import (
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// ListBookingsRequest фильтр списка бронирований в админке
type ListBookingsRequest struct {
	From   *time.Time // Начало периода по дате подачи (опционально)
	To     *time.Time // Конец периода по дате подачи (опционально)
	Status *string    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		From: r.From,
		To:   r.To,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// BookingResponse ответ с данными бронирования
// Суммы передаются строками с двумя знаками после запятой
type BookingResponse struct {
	ID            string `json:"id"`
	BookingNumber string `json:"bookingNumber"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	PickupAddress string  `json:"pickupAddress"`
	FlightNumber  *string `json:"flightNumber,omitempty"`
	Passengers    int     `json:"passengers"`
	Notes         *string `json:"notes,omitempty"`

	PickupDate string `json:"pickupDate"` // "2025-10-15"
	PickupTime string `json:"pickupTime"` // "morning" | "evening"
	TripType   string `json:"tripType"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	BasePrice           string  `json:"basePrice"`
	Price               string  `json:"price"`
	PromoCode           *string `json:"promoCode,omitempty"`
	PromoDiscountAmount string  `json:"promoDiscountAmount"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                  b.ID.String(),
		BookingNumber:       b.BookingNumber,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		PickupAddress:       b.PickupAddress,
		FlightNumber:        b.FlightNumber,
		Passengers:          b.Passengers,
		Notes:               b.Notes,
		PickupDate:          b.PickupDate.Format(domain.DateFormat),
		PickupTime:          string(b.PickupTime),
		TripType:            string(b.TripType),
		Status:              string(b.Status),
		PaymentStatus:       string(b.PaymentStatus),
		BasePrice:           b.BasePrice.StringFixed(domain.MoneyPlaces),
		Price:               b.Price.StringFixed(domain.MoneyPlaces),
		PromoCode:           b.PromoCode,
		PromoDiscountAmount: b.PromoDiscountAmount.StringFixed(domain.MoneyPlaces),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	resp.Total = len(resp.Bookings)

	return resp
}
