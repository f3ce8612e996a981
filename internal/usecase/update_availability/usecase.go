package update_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/availability"
)

// UseCase use case для ручного управления слотами оператором
type UseCase struct {
	availabilityRepo AvailabilityRepository
	reopener         Reopener
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	reopener Reopener,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		reopener:         reopener,
		txManager:        txManager,
		logger:           logger,
	}
}

type slotRequest struct {
	slot domain.Slot
	open bool
}

// Execute применяет флаги к слотам даты
// Открытие идёт через каскад (отмена удерживающего бронирования), закрытие через BlockSlot.
// Все изменения фиксируются одной транзакцией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	var changes []slotRequest
	if req.MorningOpen != nil {
		changes = append(changes, slotRequest{slot: domain.SlotMorning, open: *req.MorningOpen})
	}
	if req.EveningOpen != nil {
		changes = append(changes, slotRequest{slot: domain.SlotEvening, open: *req.EveningOpen})
	}
	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: morningOpen or eveningOpen is required", ErrInvalidInput)
	}

	day := req.Date.Format(domain.DateFormat)
	uc.logger.Info("UpdateAvailability: date=%s, changes=%d", day, len(changes))

	resp := &Response{}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокируем запись даты до изменения любого из слотов
		if err := uc.availabilityRepo.Ensure(txCtx, req.Date); err != nil {
			return fmt.Errorf("%w: failed to ensure record: %v", ErrInternal, err)
		}
		if _, err := uc.availabilityRepo.GetByDate(txCtx, req.Date); err != nil {
			return fmt.Errorf("%w: failed to lock record: %v", ErrInternal, err)
		}

		for _, c := range changes {
			change := SlotChange{Slot: c.slot, Open: c.open}

			if c.open {
				result, err := uc.reopener.ForceOpen(txCtx, req.Date, c.slot)
				if err != nil {
					return fmt.Errorf("%w: failed to reopen %s: %w", ErrInternal, c.slot, err)
				}
				change.Changed = !result.WasOpen
				change.CancelledBookingID = result.CancelledBookingID
			} else {
				blocked, err := uc.availabilityRepo.BlockSlot(txCtx, req.Date, c.slot)
				if err != nil {
					return fmt.Errorf("%w: failed to block %s: %v", ErrInternal, c.slot, err)
				}
				change.Changed = blocked
			}

			resp.Changes = append(resp.Changes, change)
		}

		record, err := uc.availabilityRepo.GetByDate(txCtx, req.Date)
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			return fmt.Errorf("%w: record for %s vanished", domain.ErrInvariantViolation, day)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to reread record: %v", ErrInternal, err)
		}

		resp.Record = record
		return nil
	})

	if err != nil {
		uc.logger.Error("UpdateAvailability: failed for %s: %v", day, err)
		return nil, err
	}

	uc.logger.Info("UpdateAvailability: %s morning=%t, evening=%t", day, resp.Record.MorningOpen, resp.Record.EveningOpen)
	return resp, nil
}
