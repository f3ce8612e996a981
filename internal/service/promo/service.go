package promo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	promoRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/promo"
)

// Service применение промокодов и управление ими
type Service struct {
	promoRepo PromoRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(promoRepo PromoRepository, txManager TransactionManager, metrics Metrics, logger Logger) *Service {
	return &Service{
		promoRepo: promoRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Apply проверяет промокод, считает скидку и списывает одно использование
// Всё выполняется в транзакции вызывающего (или своей): при откате бронирования использование не сохраняется
func (s *Service) Apply(ctx context.Context, code string, base decimal.Decimal, now time.Time) (*domain.PromoApplication, error) {
	code = domain.NormalizePromoCode(code)
	s.logger.Info("Apply: code=%s, base=%s", code, base)

	var result *domain.PromoApplication
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		promo, err := s.load(txCtx, code)
		if err != nil {
			return err
		}

		if err := checkRedeemable(promo, now); err != nil {
			return err
		}

		// Лимит повторно проверяется в самом UPDATE
		if _, err := s.promoRepo.IncrementUsage(txCtx, promo.ID); err != nil {
			if errors.Is(err, promoRepo.ErrLimitReached) {
				return fmt.Errorf("%w: code %s exhausted at write time", ErrPromoLimitReached, code)
			}
			return fmt.Errorf("%w: Apply - increment usage: %v", ErrInternal, err)
		}

		result = application(promo, base)
		return nil
	})

	s.metrics.IncPromoRedemption(redemptionResult(err))
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Apply: code=%s failed: %v", code, err)
		} else {
			s.logger.Warn("Apply: code=%s rejected: %v", code, err)
		}
		return nil, err
	}

	s.logger.Info("Apply: code=%s applied, discount=%s", code, result.DiscountAmount)
	return result, nil
}

// Preview проверяет промокод и считает скидку без списания использования
func (s *Service) Preview(ctx context.Context, code string, base decimal.Decimal, now time.Time) (*domain.PromoApplication, error) {
	code = domain.NormalizePromoCode(code)

	promo, err := s.load(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := checkRedeemable(promo, now); err != nil {
		s.logger.Warn("Preview: code=%s rejected: %v", code, err)
		return nil, err
	}

	return application(promo, base), nil
}

// Create создает промокод оператором
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.PromoCode, error) {
	promo := &domain.PromoCode{
		Code:            domain.NormalizePromoCode(req.Code),
		DiscountPercent: domain.RoundMoney(req.DiscountPercent),
		DiscountFlat:    domain.RoundMoney(req.DiscountFlat),
		MaxUses:         req.MaxUses,
		Active:          req.Active,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
	}

	if err := validateTerms(promo); err != nil {
		s.logger.Warn("CreatePromo: validation failed: %v", err)
		return nil, err
	}

	created, err := s.promoRepo.Create(ctx, promo)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoAlreadyExists) {
			s.logger.Warn("CreatePromo: code=%s already exists", promo.Code)
			return nil, ErrPromoAlreadyExists
		}
		s.logger.Error("CreatePromo: repository error for code=%s: %v", promo.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePromo: code=%s created, id=%d", created.Code, created.ID)
	return created, nil
}

// Update меняет условия существующего промокода, счётчик использований сохраняется
func (s *Service) Update(ctx context.Context, code string, req *UpdateRequest) (*domain.PromoCode, error) {
	code = domain.NormalizePromoCode(code)

	var updated *domain.PromoCode
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		promo, err := s.load(txCtx, code)
		if err != nil {
			return err
		}

		applyUpdate(promo, req)
		if err := validateTerms(promo); err != nil {
			return err
		}

		updated, err = s.promoRepo.Update(txCtx, promo)
		switch {
		case errors.Is(err, promoRepo.ErrPromoNotFound):
			return ErrPromoNotFound
		case errors.Is(err, promoRepo.ErrUsageBelowCount):
			return fmt.Errorf("%w: max uses below used count", ErrInvalidInput)
		case err != nil:
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("UpdatePromo: code=%s failed: %v", code, err)
		return nil, err
	}

	s.logger.Info("UpdatePromo: code=%s updated", code)
	return updated, nil
}

// List возвращает все промокоды
func (s *Service) List(ctx context.Context) ([]*domain.PromoCode, error) {
	promos, err := s.promoRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListPromo: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return promos, nil
}

func (s *Service) load(ctx context.Context, code string) (*domain.PromoCode, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrPromoNotFound)
	}

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if errors.Is(err, promoRepo.ErrPromoNotFound) {
		return nil, fmt.Errorf("%w: code %s", ErrPromoNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get code %s: %v", ErrInternal, code, err)
	}

	return promo, nil
}

func application(promo *domain.PromoCode, base decimal.Decimal) *domain.PromoApplication {
	discount := domain.ComputeDiscount(base, promo.DiscountPercent, promo.DiscountFlat)
	return &domain.PromoApplication{
		AppliedCode:      promo.Code,
		BaseAmount:       base,
		DiscountAmount:   discount,
		DiscountedAmount: domain.RoundMoney(base.Sub(discount)),
	}
}

func applyUpdate(promo *domain.PromoCode, req *UpdateRequest) {
	if req.DiscountPercent != nil {
		promo.DiscountPercent = domain.RoundMoney(*req.DiscountPercent)
	}
	if req.DiscountFlat != nil {
		promo.DiscountFlat = domain.RoundMoney(*req.DiscountFlat)
	}
	if req.MaxUses != nil {
		promo.MaxUses = *req.MaxUses
	}
	if req.Active != nil {
		promo.Active = *req.Active
	}
	if req.ValidFrom != nil {
		promo.ValidFrom = req.ValidFrom
	}
	if req.ValidTo != nil {
		promo.ValidTo = req.ValidTo
	}
	if req.ClearValidFrom {
		promo.ValidFrom = nil
	}
	if req.ClearValidTo {
		promo.ValidTo = nil
	}
}

func redemptionResult(err error) string {
	switch {
	case err == nil:
		return resultRedeemed
	case errors.Is(err, ErrPromoNotFound):
		return resultNotFound
	case errors.Is(err, ErrPromoExpired):
		return resultExpired
	case errors.Is(err, ErrPromoLimitReached):
		return resultLimitReached
	default:
		return resultError
	}
}
