package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	slots        SlotAllocator
	promo        PromoApplicator
	txManager    TransactionManager
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slots SlotAllocator,
	promo PromoApplicator,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slots:        slots,
		promo:        promo,
		txManager:    txManager,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Промокод, слот и запись бронирования фиксируются одной транзакцией: любая ошибка откатывает всё
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%s, trip=%s",
		req.PickupDate.Format(domain.DateFormat), req.PickupTime, req.TripType)

	// 1. Валидация входных данных
	v, err := validateRequest(req, uc.settings.Location)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату относительно текущего дня в часовом поясе сервиса
	now := uc.timeProvider.Now()
	if err := validateDate(v.date, now, uc.settings.Location, uc.settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Базовая цена по тарифу направления
	basePrice, ok := uc.settings.Tariffs[v.tripType]
	if !ok {
		uc.logger.Error("CreateBooking: no tariff for trip type %s", v.tripType)
		return nil, fmt.Errorf("%w: no tariff for trip type %s", ErrInternal, v.tripType)
	}

	promoCode := trimmed(req.PromoCode)
	day := v.date.Format(domain.DateFormat)

	var result *domain.Booking

	// 4. Промокод -> слот -> бронирование в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking := &domain.Booking{
			ID:                  uuid.New(),
			BookingNumber:       domain.NewBookingNumber(now),
			CustomerName:        strings.TrimSpace(req.CustomerName),
			CustomerEmail:       strings.TrimSpace(req.CustomerEmail),
			CustomerPhone:       strings.TrimSpace(req.CustomerPhone),
			PickupAddress:       strings.TrimSpace(req.PickupAddress),
			FlightNumber:        trimmed(req.FlightNumber),
			Passengers:          req.Passengers,
			Notes:               trimmed(req.Notes),
			PickupDate:          v.date,
			PickupTime:          v.slot,
			TripType:            v.tripType,
			Status:              domain.StatusPending,
			PaymentStatus:       domain.PaymentPending,
			BasePrice:           basePrice,
			Price:               basePrice,
			PromoDiscountAmount: decimal.Zero,
		}

		// 4.1. Применяем промокод, использование списывается в этой же транзакции
		if promoCode != nil {
			applied, err := uc.promo.Apply(txCtx, *promoCode, basePrice, now)
			if err != nil {
				return mapPromoError(err)
			}
			booking.PromoCode = &applied.AppliedCode
			booking.PromoDiscountAmount = applied.DiscountAmount
			booking.Price = applied.DiscountedAmount
		}

		// 4.2. Закрываем слот
		if _, err := uc.slots.Reserve(txCtx, v.date, v.slot); err != nil {
			if errors.Is(err, slots.ErrSlotUnavailable) {
				return fmt.Errorf("%w: %s/%s", ErrSlotNotAvailable, day, v.slot)
			}
			return fmt.Errorf("%w: failed to reserve slot: %w", ErrInternal, err)
		}

		// 4.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %s/%s has an active booking", ErrSlotNotAvailable, day, v.slot)
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: failed for %s/%s: %v", day, v.slot, err)
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateBooking: slot %s/%s not available", day, v.slot)
		default:
			uc.logger.Warn("CreateBooking: rejected: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, number=%s, price=%s",
		result.ID, result.BookingNumber, result.Price)

	return &Response{Booking: result}, nil
}

// mapPromoError переводит ошибки промокода в ошибки usecase
func mapPromoError(err error) error {
	switch {
	case errors.Is(err, promo.ErrPromoNotFound):
		return ErrPromoNotFound
	case errors.Is(err, promo.ErrPromoExpired):
		return ErrPromoExpired
	case errors.Is(err, promo.ErrPromoLimitReached):
		return ErrPromoLimitReached
	default:
		return fmt.Errorf("%w: failed to apply promo code: %w", ErrInternal, err)
	}
}
