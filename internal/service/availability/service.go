package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// Service чтение доступности слотов для календаря
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetDate возвращает запись на дату, создавая запись по умолчанию при отсутствии
func (s *Service) GetDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error) {
	day := date.Format(domain.DateFormat)

	if err := s.availabilityRepo.Ensure(ctx, date); err != nil {
		s.logger.Error("GetDate: failed to ensure record for %s: %v", day, err)
		return nil, fmt.Errorf("%w: GetDate - ensure record: %v", ErrInternal, err)
	}

	record, err := s.availabilityRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDate: failed to get record for %s: %v", day, err)
		return nil, fmt.Errorf("%w: GetDate - get record: %v", ErrInternal, err)
	}

	return record, nil
}

// GetRange возвращает по записи на каждый день диапазона
// Дни без сохранённой записи заполняются открытыми слотами без создания строк
func (s *Service) GetRange(ctx context.Context, r domain.DateRange) ([]*domain.AvailabilityRecord, error) {
	if r.To.Before(r.From) {
		return nil, fmt.Errorf("%w: from after to", ErrInvalidRange)
	}
	if r.Days() > domain.MaxAvailabilityRangeDays {
		return nil, fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, domain.MaxAvailabilityRangeDays)
	}

	stored, err := s.availabilityRepo.GetRange(ctx, r.From, r.To)
	if err != nil {
		s.logger.Error("GetRange: failed to get records %s..%s: %v",
			r.From.Format(domain.DateFormat), r.To.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetRange - repository error: %v", ErrInternal, err)
	}

	byDay := make(map[string]*domain.AvailabilityRecord, len(stored))
	for _, rec := range stored {
		byDay[rec.Date.Format(domain.DateFormat)] = rec
	}

	records := make([]*domain.AvailabilityRecord, 0, r.Days())
	for _, date := range r.Dates() {
		if rec, ok := byDay[date.Format(domain.DateFormat)]; ok {
			records = append(records, rec)
			continue
		}
		records = append(records, domain.DefaultAvailability(date))
	}

	return records, nil
}
