package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBooking_SlotOccupancy(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.HoldsSlot())
	assert.True(t, b.OccupiesSlot())

	b.Status = StatusCompleted
	assert.False(t, b.HoldsSlot())
	assert.True(t, b.OccupiesSlot())

	b.Status = StatusCancelled
	assert.False(t, b.HoldsSlot())
	assert.False(t, b.OccupiesSlot())
	assert.True(t, b.IsCancelled())
}

func TestBooking_CountsAsRevenue(t *testing.T) {
	tests := []struct {
		name    string
		status  BookingStatus
		payment PaymentStatus
		want    bool
	}{
		{"pending unpaid", StatusPending, PaymentPending, false},
		{"pending paid", StatusPending, PaymentPaid, true},
		{"confirmed unpaid", StatusConfirmed, PaymentPending, true},
		{"completed", StatusCompleted, PaymentPaid, true},
		{"cancelled paid", StatusCancelled, PaymentPaid, false},
		{"confirmed refunded", StatusConfirmed, PaymentRefunded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, PaymentStatus: tt.payment}
			assert.Equal(t, tt.want, b.CountsAsRevenue())
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus(" cancelled ")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, s)

	_, err = ParseBookingStatus("archived")
	assert.Error(t, err)
}

func TestNewBookingNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	number := NewBookingNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^TB20250314092653[0-9A-F]{4}$`), number)
}

func TestComputeDiscount(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name    string
		base    string
		percent string
		flat    string
		want    string
	}{
		{"percent", "100", "10", "0", "10"},
		{"percent beats flat", "100", "10", "30", "10"},
		{"flat only", "100", "0", "30", "30"},
		{"flat clamped to base", "20", "0", "30", "20"},
		{"percent over hundred clamped", "50", "150", "0", "50"},
		{"negative flat clamped to zero", "50", "0", "-5", "0"},
		{"rounded half up", "33.33", "15", "0", "5"},
		{"zero base", "0", "10", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDiscount(d(tt.base), d(tt.percent), d(tt.flat))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestPromoCode_Validity(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	from := now.Add(-time.Hour)
	to := now.Add(time.Hour)

	p := &PromoCode{MaxUses: 2, UsedCount: 1, ValidFrom: &from, ValidTo: &to}
	assert.True(t, p.IsWithinWindow(now))
	assert.False(t, p.IsExhausted())
	assert.Equal(t, 1, p.RemainingUses())

	p.UsedCount = 2
	assert.True(t, p.IsExhausted())
	assert.Equal(t, 0, p.RemainingUses())

	assert.False(t, p.IsWithinWindow(to.Add(time.Second)))
	assert.False(t, p.IsWithinWindow(from.Add(-time.Second)))

	unlimited := &PromoCode{MaxUses: 0, UsedCount: 1000}
	assert.False(t, unlimited.IsExhausted())
	assert.Equal(t, -1, unlimited.RemainingUses())
	assert.True(t, unlimited.IsWithinWindow(now))
}

func TestNormalizePromoCode(t *testing.T) {
	assert.Equal(t, "SUMMER10", NormalizePromoCode("  summer10 "))
}
