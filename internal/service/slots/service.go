package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/availability"
)

// Service распределитель слотов: резервирует и освобождает (дата, слот)
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger
}

// NewService создает новый экземпляр распределителя слотов
func NewService(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Reserve закрывает слот под новое бронирование
// Создание записи по умолчанию и условное переключение флага выполняются в одной транзакции;
// при вызове внутри транзакции вызывающего откат этой транзакции вернёт слот
func (s *Service) Reserve(ctx context.Context, date time.Time, slot domain.Slot) (*Reservation, error) {
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}

	day := date.Format(domain.DateFormat)
	s.logger.Info("Reserve: date=%s, slot=%s", day, slot)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.availabilityRepo.Ensure(txCtx, date); err != nil {
			return fmt.Errorf("%w: Reserve - ensure record: %v", ErrInternal, err)
		}

		changed, err := s.availabilityRepo.CloseSlot(txCtx, date, slot)
		if err != nil {
			return fmt.Errorf("%w: Reserve - close slot: %v", ErrInternal, err)
		}
		if changed {
			return nil
		}

		// Ноль строк: либо слот уже закрыт, либо данные рассогласованы
		record, err := s.availabilityRepo.GetByDate(txCtx, date)
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			return fmt.Errorf("%w: Reserve - record for %s vanished after ensure", domain.ErrInvariantViolation, day)
		}
		if err != nil {
			return fmt.Errorf("%w: Reserve - reread record: %v", ErrInternal, err)
		}
		if record.IsOpen(slot) {
			return fmt.Errorf("%w: Reserve - conditional close missed open slot %s/%s", domain.ErrInvariantViolation, day, slot)
		}

		return ErrSlotUnavailable
	})

	switch {
	case err == nil:
		s.metrics.IncSlotReservation(string(slot), resultReserved)
		s.logger.Info("Reserve: slot %s/%s reserved", day, slot)
		return &Reservation{Date: date, Slot: slot}, nil
	case errors.Is(err, ErrSlotUnavailable):
		s.metrics.IncSlotReservation(string(slot), resultUnavailable)
		s.logger.Warn("Reserve: slot %s/%s unavailable", day, slot)
		return nil, err
	default:
		s.metrics.IncSlotReservation(string(slot), resultError)
		s.logger.Error("Reserve: failed for %s/%s: %v", day, slot, err)
		return nil, err
	}
}

// Release открывает слот после отмены удерживавшего его бронирования
// Уже открытый слот не считается ошибкой
func (s *Service) Release(ctx context.Context, date time.Time, slot domain.Slot) error {
	if !slot.IsValid() {
		return ErrInvalidSlot
	}

	day := date.Format(domain.DateFormat)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		changed, err := s.availabilityRepo.OpenSlot(txCtx, date, slot, true)
		if err != nil {
			s.logger.Error("Release: failed to open %s/%s: %v", day, slot, err)
			return fmt.Errorf("%w: Release - open slot: %v", ErrInternal, err)
		}

		if !changed {
			s.logger.Warn("Release: slot %s/%s was already open", day, slot)
			return nil
		}

		s.logger.Info("Release: slot %s/%s released", day, slot)
		return nil
	})
}

// Lock блокирует запись доступности даты до конца транзакции, создавая её при отсутствии
// Все пути, меняющие бронирование и флаг, сначала берут эту блокировку
func (s *Service) Lock(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error) {
	if err := s.availabilityRepo.Ensure(ctx, date); err != nil {
		return nil, fmt.Errorf("%w: Lock - ensure record: %v", ErrInternal, err)
	}

	record, err := s.availabilityRepo.GetByDate(ctx, date)
	if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: Lock - record for %s vanished after ensure", domain.ErrInvariantViolation, date.Format(domain.DateFormat))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Lock - get record: %v", ErrInternal, err)
	}

	return record, nil
}
