package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Ensure(ctx context.Context, date time.Time) error {
	return m.Called(ctx, date).Error(0)
}

func (m *mockRepo) GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error) {
	args := m.Called(ctx, date)
	rec, _ := args.Get(0).(*domain.AvailabilityRecord)
	return rec, args.Error(1)
}

func (m *mockRepo) GetRange(ctx context.Context, from, to time.Time) ([]*domain.AvailabilityRecord, error) {
	args := m.Called(ctx, from, to)
	recs, _ := args.Get(0).([]*domain.AvailabilityRecord)
	return recs, args.Error(1)
}

var start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestGetDate_EnsuresRecord(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("Ensure", ctx, start).Return(nil).Once()
	repo.On("GetByDate", ctx, start).Return(domain.DefaultAvailability(start), nil).Once()

	rec, err := svc.GetDate(ctx, start)
	require.NoError(t, err)
	assert.True(t, rec.MorningOpen)
	repo.AssertExpectations(t)
}

func TestGetDate_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("Ensure", ctx, start).Return(errors.New("db down"))

	_, err := svc.GetDate(ctx, start)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetRange_FillsMissingDays(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, logger.NewNop())
	ctx := context.Background()
	end := start.AddDate(0, 0, 2)

	stored := &domain.AvailabilityRecord{Date: start.AddDate(0, 0, 1), MorningOpen: false, EveningOpen: true}
	repo.On("GetRange", ctx, start, end).Return([]*domain.AvailabilityRecord{stored}, nil)

	records, err := svc.GetRange(ctx, domain.DateRange{From: start, To: end})
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "2025-03-01", records[0].Date.Format(domain.DateFormat))
	assert.True(t, records[0].MorningOpen)
	assert.Same(t, stored, records[1])
	assert.True(t, records[2].EveningOpen)
	repo.AssertNotCalled(t, "Ensure", mock.Anything, mock.Anything)
}

func TestGetRange_Invalid(t *testing.T) {
	svc := NewService(&mockRepo{}, logger.NewNop())

	_, err := svc.GetRange(context.Background(), domain.DateRange{From: start, To: start.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.GetRange(context.Background(), domain.DateRange{From: start, To: start.AddDate(0, 0, domain.MaxAvailabilityRangeDays)})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
