package reopen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/availability"
)

// Service каскадное открытие слота оператором
type Service struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// ForceOpen открывает слот, отменяя (CANCELLED, REFUNDED) бронирование, которое его удерживает
// Отмена и открытие флага фиксируются одной транзакцией. Завершённые поездки не трогаются.
// Повторный вызов на открытом слоте ничего не меняет
func (s *Service) ForceOpen(ctx context.Context, date time.Time, slot domain.Slot) (*Result, error) {
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}

	day := date.Format(domain.DateFormat)
	s.logger.Info("ForceOpen: date=%s, slot=%s", day, slot)

	var result *Result
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.forceOpen(txCtx, date, slot)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		s.metrics.IncCascadeReopen(outcomeError)
		s.logger.Error("ForceOpen: failed for %s/%s: %v", day, slot, err)
		return nil, err
	}

	switch {
	case result.CancelledBookingID != nil:
		s.metrics.IncCascadeReopen(outcomeCancelled)
		s.logger.Info("ForceOpen: slot %s/%s reopened, booking %s cancelled", day, slot, result.CancelledBookingID)
	case result.WasOpen:
		s.metrics.IncCascadeReopen(outcomeNoop)
		s.logger.Info("ForceOpen: slot %s/%s already open", day, slot)
	default:
		s.metrics.IncCascadeReopen(outcomeOpened)
		s.logger.Info("ForceOpen: slot %s/%s reopened", day, slot)
	}

	return result, nil
}

func (s *Service) forceOpen(ctx context.Context, date time.Time, slot domain.Slot) (*Result, error) {
	day := date.Format(domain.DateFormat)

	// Сначала блокируем запись доступности, затем бронирования: тот же порядок, что и при отмене
	if err := s.availabilityRepo.Ensure(ctx, date); err != nil {
		return nil, fmt.Errorf("%w: ForceOpen - ensure record: %v", ErrInternal, err)
	}

	record, err := s.availabilityRepo.GetByDate(ctx, date)
	if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: ForceOpen - record for %s vanished after ensure", domain.ErrInvariantViolation, day)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ForceOpen - get record: %v", ErrInternal, err)
	}

	occupants, err := s.bookingRepo.GetSlotOccupants(ctx, date, slot)
	if err != nil {
		return nil, fmt.Errorf("%w: ForceOpen - get occupants: %v", ErrInternal, err)
	}

	holders := make([]*domain.Booking, 0, 1)
	for _, b := range occupants {
		if b.HoldsSlot() {
			holders = append(holders, b)
		}
	}
	if len(holders) > 1 {
		return nil, fmt.Errorf("%w: ForceOpen - %d active bookings on %s/%s", domain.ErrInvariantViolation, len(holders), day, slot)
	}

	result := &Result{Reopened: true, WasOpen: record.IsOpen(slot)}

	if len(holders) == 1 {
		holder := holders[0]
		if result.WasOpen {
			s.logger.Warn("ForceOpen: slot %s/%s is open but booking %s holds it", day, slot, holder.ID)
		}

		cancelled, err := s.bookingRepo.CancelAndRefund(ctx, holder.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: ForceOpen - cancel booking %s: %v", ErrInternal, holder.ID, err)
		}
		if !cancelled {
			return nil, fmt.Errorf("%w: ForceOpen - locked booking %s changed status", domain.ErrInvariantViolation, holder.ID)
		}

		id := holder.ID
		result.CancelledBookingID = &id
	}

	if result.WasOpen {
		return result, nil
	}

	opened, err := s.availabilityRepo.OpenSlot(ctx, date, slot, len(holders) == 1)
	if err != nil {
		return nil, fmt.Errorf("%w: ForceOpen - open slot: %v", ErrInternal, err)
	}
	if !opened {
		return nil, fmt.Errorf("%w: ForceOpen - locked slot %s/%s changed state", domain.ErrInvariantViolation, day, slot)
	}

	return result, nil
}
