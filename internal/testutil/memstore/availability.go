package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/availability"
)

// Availability повторяет контракт availability.Repository
type Availability struct {
	s *Store
}

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

// Ensure создает запись с открытыми слотами, если её ещё нет
func (a *Availability) Ensure(_ context.Context, date time.Time) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.availability[dateKey(date)]; !ok {
		now := time.Now()
		rec := *domain.DefaultAvailability(date)
		rec.CreatedAt, rec.UpdatedAt = now, now
		a.s.availability[dateKey(date)] = rec
	}
	return nil
}

// GetByDate получает запись доступности на дату
func (a *Availability) GetByDate(_ context.Context, date time.Time) (*domain.AvailabilityRecord, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	rec, ok := a.s.availability[dateKey(date)]
	if !ok {
		return nil, availabilityRepo.ErrRecordNotFound
	}
	return &rec, nil
}

// GetRange получает сохранённые записи диапазона по возрастанию даты
func (a *Availability) GetRange(_ context.Context, from, to time.Time) ([]*domain.AvailabilityRecord, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	lo, hi := dateKey(from), dateKey(to)
	records := make([]*domain.AvailabilityRecord, 0)
	for k, v := range a.s.availability {
		if k >= lo && k <= hi {
			rec := v
			records = append(records, &rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

// CloseSlot закрывает открытый слот под бронирование
func (a *Availability) CloseSlot(_ context.Context, date time.Time, slot domain.Slot) (bool, error) {
	return a.update(date, slot, func(rec *domain.AvailabilityRecord) bool {
		if !rec.IsOpen(slot) {
			return false
		}
		setFlag(rec, slot, false)
		rec.CurrentBookings++
		return true
	})
}

// OpenSlot открывает закрытый слот
func (a *Availability) OpenSlot(_ context.Context, date time.Time, slot domain.Slot, releaseOccupant bool) (bool, error) {
	return a.update(date, slot, func(rec *domain.AvailabilityRecord) bool {
		if rec.IsOpen(slot) {
			return false
		}
		setFlag(rec, slot, true)
		if releaseOccupant && rec.CurrentBookings > 0 {
			rec.CurrentBookings--
		}
		return true
	})
}

// BlockSlot закрывает слот оператором
func (a *Availability) BlockSlot(_ context.Context, date time.Time, slot domain.Slot) (bool, error) {
	return a.update(date, slot, func(rec *domain.AvailabilityRecord) bool {
		if !rec.IsOpen(slot) {
			return false
		}
		setFlag(rec, slot, false)
		return true
	})
}

func (a *Availability) update(date time.Time, slot domain.Slot, fn func(rec *domain.AvailabilityRecord) bool) (bool, error) {
	if !slot.IsValid() {
		return false, availabilityRepo.ErrInvalidSlot
	}

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	rec, ok := a.s.availability[dateKey(date)]
	if !ok {
		return false, nil
	}
	if !fn(&rec) {
		return false, nil
	}
	rec.UpdatedAt = time.Now()
	a.s.availability[dateKey(date)] = rec
	return true, nil
}

func setFlag(rec *domain.AvailabilityRecord, slot domain.Slot, open bool) {
	switch slot {
	case domain.SlotMorning:
		rec.MorningOpen = open
	case domain.SlotEvening:
		rec.EveningOpen = open
	}
}
