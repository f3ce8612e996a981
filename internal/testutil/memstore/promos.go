package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	promoRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/promo"
)

// Promos повторяет контракт promo.Repository
type Promos struct {
	s *Store
}

// Create сохраняет промокод
func (p *Promos) Create(_ context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.promos[promo.Code]; ok {
		return nil, promoRepo.ErrPromoAlreadyExists
	}

	p.s.nextPromoID++
	now := time.Now()
	created := *promo
	created.ID = p.s.nextPromoID
	created.UsedCount = 0
	created.CreatedAt, created.UpdatedAt = now, now
	p.s.promos[created.Code] = created
	return &created, nil
}

// Update обновляет условия промокода по коду
func (p *Promos) Update(_ context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	existing, ok := p.s.promos[promo.Code]
	if !ok {
		return nil, promoRepo.ErrPromoNotFound
	}
	if promo.MaxUses != 0 && promo.MaxUses < existing.UsedCount {
		return nil, promoRepo.ErrUsageBelowCount
	}

	updated := *promo
	updated.ID = existing.ID
	updated.UsedCount = existing.UsedCount
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	p.s.promos[updated.Code] = updated
	return &updated, nil
}

// GetByCode получает промокод по коду
func (p *Promos) GetByCode(_ context.Context, code string) (*domain.PromoCode, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	promo, ok := p.s.promos[code]
	if !ok {
		return nil, promoRepo.ErrPromoNotFound
	}
	return &promo, nil
}

// List получает все промокоды
func (p *Promos) List(_ context.Context) ([]*domain.PromoCode, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	result := make([]*domain.PromoCode, 0, len(p.s.promos))
	for _, v := range p.s.promos {
		promo := v
		result = append(result, &promo)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// IncrementUsage списывает одно использование, если лимит не исчерпан
func (p *Promos) IncrementUsage(_ context.Context, id int64) (int, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for code, promo := range p.s.promos {
		if promo.ID != id {
			continue
		}
		if promo.IsExhausted() {
			return 0, promoRepo.ErrLimitReached
		}
		promo.UsedCount++
		p.s.promos[code] = promo
		return promo.UsedCount, nil
	}
	return 0, promoRepo.ErrLimitReached
}
