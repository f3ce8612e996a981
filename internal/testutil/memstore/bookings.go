package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/booking"
)

// Bookings повторяет контракт booking.Repository, включая уникальность активного бронирования слота
type Bookings struct {
	s *Store
}

// Create сохраняет новое бронирование
func (b *Bookings) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	for _, existing := range b.s.bookings {
		if existing.BookingNumber == booking.BookingNumber {
			return nil, bookingRepo.ErrDuplicateBookingNumber
		}
		if existing.HoldsSlot() &&
			domain.SameDay(existing.PickupDate, booking.PickupDate) &&
			existing.PickupTime == booking.PickupTime {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	now := time.Now()
	booking.CreatedAt, booking.UpdatedAt = now, now
	b.s.bookings[booking.ID] = *booking

	created := *booking
	return &created, nil
}

// GetByID получает бронирование по ID
func (b *Bookings) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	booking, ok := b.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &booking, nil
}

// GetSlotOccupants получает неотменённые бронирования слота
func (b *Bookings) GetSlotOccupants(_ context.Context, date time.Time, slot domain.Slot) ([]*domain.Booking, error) {
	return b.filter(func(booking *domain.Booking) bool {
		return booking.OccupiesSlot() &&
			domain.SameDay(booking.PickupDate, date) &&
			booking.PickupTime == slot
	}), nil
}

// UpdateStatus переводит бронирование из статуса from в статус to
func (b *Bookings) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	booking, ok := b.s.bookings[id]
	if !ok || booking.Status != from {
		return bookingRepo.ErrStatusConflict
	}

	now := time.Now()
	booking.Status = to
	booking.UpdatedAt = now
	if to == domain.StatusCancelled {
		booking.CancelledAt = &now
	}
	b.s.bookings[id] = booking
	return nil
}

// CancelAndRefund отменяет бронирование с возвратом оплаты
func (b *Bookings) CancelAndRefund(_ context.Context, id uuid.UUID) (bool, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	booking, ok := b.s.bookings[id]
	if !ok || booking.IsCancelled() {
		return false, nil
	}

	now := time.Now()
	booking.Status = domain.StatusCancelled
	booking.PaymentStatus = domain.PaymentRefunded
	booking.CancelledAt = &now
	booking.UpdatedAt = now
	b.s.bookings[id] = booking
	return true, nil
}

// List получает бронирования по фильтру
func (b *Bookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return b.filter(func(booking *domain.Booking) bool {
		day := booking.PickupDate.Format(domain.DateFormat)
		if filter.From != nil && day < filter.From.Format(domain.DateFormat) {
			return false
		}
		if filter.To != nil && day > filter.To.Format(domain.DateFormat) {
			return false
		}
		return filter.Status == nil || booking.Status == *filter.Status
	}), nil
}

// ListCreatedBetween получает бронирования, созданные в полуинтервале [from, to)
func (b *Bookings) ListCreatedBetween(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	return b.filter(func(booking *domain.Booking) bool {
		return !booking.CreatedAt.Before(from) && booking.CreatedAt.Before(to)
	}), nil
}

func (b *Bookings) filter(keep func(booking *domain.Booking) bool) []*domain.Booking {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, v := range b.s.bookings {
		booking := v
		if keep(&booking) {
			result = append(result, &booking)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result
}
