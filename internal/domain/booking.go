package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// PaymentStatus represents the payment state recorded on a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Booking represents a taxi transfer booked for a (date, slot) pair
type Booking struct {
	ID            uuid.UUID
	BookingNumber string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PickupAddress string
	FlightNumber  *string
	Passengers    int
	Notes         *string

	PickupDate time.Time
	PickupTime Slot
	TripType   TripType

	Status        BookingStatus
	PaymentStatus PaymentStatus

	BasePrice           decimal.Decimal
	Price               decimal.Decimal
	PromoCode           *string
	PromoDiscountAmount decimal.Decimal

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HoldsSlot returns true if the booking currently locks its slot
func (b *Booking) HoldsSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OccupiesSlot returns true if the booking still references its slot,
// completed trips included (historical occupancy)
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CountsAsRevenue returns true if the booking price belongs to the revenue sum
func (b *Booking) CountsAsRevenue() bool {
	if b.Status == StatusCancelled || b.PaymentStatus == PaymentRefunded {
		return false
	}
	return b.PaymentStatus == PaymentPaid ||
		b.Status == StatusConfirmed ||
		b.Status == StatusCompleted
}

// HasPromo returns true if a promo code was applied at creation
func (b *Booking) HasPromo() bool {
	return b.PromoCode != nil && *b.PromoCode != ""
}

// transitions allowed status changes; CANCELLED and COMPLETED are terminal
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// CanTransition reports whether a booking may move from one status to another
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseBookingStatus converts a raw value (case-insensitive) into a BookingStatus
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
	for _, valid := range BookingStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", raw)
}

// NewBookingNumber builds the human-readable booking number: prefix, timestamp, random suffix
func NewBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:BookingNumberSuffixLength])
	return BookingNumberPrefix + now.Format("20060102150405") + suffix
}

// BookingsFilter фильтр для списка бронирований в админке
type BookingsFilter struct {
	From   *time.Time     // Начало периода по дате подачи (опционально)
	To     *time.Time     // Конец периода по дате подачи (опционально)
	Status *BookingStatus // Фильтр по статусу (опционально)
}
