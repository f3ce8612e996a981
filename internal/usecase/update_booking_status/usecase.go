package update_booking_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/booking"
)

// UseCase use case для смены статуса бронирования оператором или отмены клиентом
type UseCase struct {
	bookingRepo BookingRepository
	slots       SlotAllocator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slots SlotAllocator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slots:       slots,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute переводит бронирование в новый статус
// Порядок блокировок: запись доступности даты, затем строка бронирования.
// Отмена удерживающего слот бронирования открывает слот в той же транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%s, status=%s, customer=%t",
		req.BookingID, req.Status, req.BookingNumber != nil)

	// 1. Валидация входных данных
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем бронирование без блокировки, чтобы узнать дату для блокировки доступности
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking %s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get booking %s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Клиент подтверждает владение номером бронирования
	if req.BookingNumber != nil && !strings.EqualFold(strings.TrimSpace(*req.BookingNumber), booking.BookingNumber) {
		uc.logger.Warn("UpdateBookingStatus: booking number mismatch for %s", req.BookingID)
		return nil, ErrBookingNotFound
	}

	resp := &Response{}

	// 4. Переход внутри транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.slots.Lock(txCtx, booking.PickupDate); err != nil {
			return fmt.Errorf("%w: failed to lock availability: %w", ErrInternal, err)
		}

		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to lock booking: %v", ErrInternal, err)
		}

		// Повторный запрос того же статуса, например отмена после принудительного открытия
		if current.Status == target {
			resp.Booking = current
			return nil
		}

		if !domain.CanTransition(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}

		holding := current.HoldsSlot()

		if err := uc.bookingRepo.UpdateStatus(txCtx, current.ID, current.Status, target); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return fmt.Errorf("%w: status of locked booking %s changed", domain.ErrInvariantViolation, current.ID)
			}
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		if target == domain.StatusCancelled && holding {
			if err := uc.slots.Release(txCtx, current.PickupDate, current.PickupTime); err != nil {
				return fmt.Errorf("%w: failed to release slot: %w", ErrInternal, err)
			}
			resp.SlotReleased = true
		}

		updated, err := uc.bookingRepo.GetByID(txCtx, current.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to reread booking: %v", ErrInternal, err)
		}

		resp.Booking = updated
		resp.Changed = true
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			uc.logger.Warn("UpdateBookingStatus: booking %s: %v", req.BookingID, err)
		} else {
			uc.logger.Error("UpdateBookingStatus: failed for booking %s: %v", req.BookingID, err)
		}
		return nil, err
	}

	if !resp.Changed {
		uc.logger.Info("UpdateBookingStatus: booking %s already %s", req.BookingID, target)
		return resp, nil
	}

	uc.logger.Info("UpdateBookingStatus: booking %s is now %s, slot released=%t",
		req.BookingID, target, resp.SlotReleased)
	return resp, nil
}
