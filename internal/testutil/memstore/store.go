// Package memstore хранилище в памяти с транзакциями для тестов usecase
// Транзакции сериализуются, при ошибке состояние откатывается к снимку
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

type txKey struct{}

// Store общее состояние трёх таблиц
type Store struct {
	txMu sync.Mutex // одна транзакция за раз, заменяет блокировки строк
	mu   sync.Mutex // защищает данные

	availability map[string]domain.AvailabilityRecord
	bookings     map[uuid.UUID]domain.Booking
	promos       map[string]domain.PromoCode
	nextPromoID  int64
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		availability: make(map[string]domain.AvailabilityRecord),
		bookings:     make(map[uuid.UUID]domain.Booking),
		promos:       make(map[string]domain.PromoCode),
	}
}

type snapshot struct {
	availability map[string]domain.AvailabilityRecord
	bookings     map[uuid.UUID]domain.Booking
	promos       map[string]domain.PromoCode
	nextPromoID  int64
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		availability: make(map[string]domain.AvailabilityRecord, len(s.availability)),
		bookings:     make(map[uuid.UUID]domain.Booking, len(s.bookings)),
		promos:       make(map[string]domain.PromoCode, len(s.promos)),
		nextPromoID:  s.nextPromoID,
	}
	for k, v := range s.availability {
		snap.availability[k] = v
	}
	for k, v := range s.bookings {
		snap.bookings[k] = v
	}
	for k, v := range s.promos {
		snap.promos[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.availability = snap.availability
	s.bookings = snap.bookings
	s.promos = snap.promos
	s.nextPromoID = snap.nextPromoID
}

// Do выполняет fn в транзакции; вложенный вызов присоединяется к внешней
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// Availability репозиторий доступности поверх хранилища
func (s *Store) Availability() *Availability {
	return &Availability{s: s}
}

// Bookings репозиторий бронирований поверх хранилища
func (s *Store) Bookings() *Bookings {
	return &Bookings{s: s}
}

// Promos репозиторий промокодов поверх хранилища
func (s *Store) Promos() *Promos {
	return &Promos{s: s}
}
