package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDefaultAvailability(t *testing.T) {
	rec := DefaultAvailability(day("2025-07-01"))

	assert.True(t, rec.IsOpen(SlotMorning))
	assert.True(t, rec.IsOpen(SlotEvening))
	assert.Equal(t, 2, rec.OpenSlots())
	assert.Equal(t, DefaultMaxBookings, rec.MaxBookings)
	assert.Zero(t, rec.CurrentBookings)
}

func TestAvailabilityRecord_IsOpen(t *testing.T) {
	rec := &AvailabilityRecord{MorningOpen: false, EveningOpen: true}

	assert.False(t, rec.IsOpen(SlotMorning))
	assert.True(t, rec.IsOpen(SlotEvening))
	assert.False(t, rec.IsOpen(Slot("night")))
	assert.Equal(t, 1, rec.OpenSlots())
}

func TestSlot_Column(t *testing.T) {
	assert.Equal(t, "morning_open", SlotMorning.Column())
	assert.Equal(t, "evening_open", SlotEvening.Column())
	assert.Empty(t, Slot("noon").Column())

	_, err := ParseSlot("noon")
	assert.Error(t, err)

	_, err = ParseTripType("home_to_airport")
	assert.NoError(t, err)
}

func TestDateRange(t *testing.T) {
	r := DateRange{From: day("2025-02-27"), To: day("2025-03-02")}

	require.Equal(t, 4, r.Days())
	dates := r.Dates()
	assert.Equal(t, "2025-02-27", dates[0].Format(DateFormat))
	assert.Equal(t, "2025-03-02", dates[3].Format(DateFormat))

	assert.Zero(t, DateRange{From: day("2025-03-02"), To: day("2025-03-01")}.Days())
	assert.True(t, DateRange{}.IsZero())
}

func TestLastDays(t *testing.T) {
	r := LastDays(day("2025-01-03"), DefaultDashboardDays)

	assert.Equal(t, "2024-12-28", r.From.Format(DateFormat))
	assert.Equal(t, "2025-01-03", r.To.Format(DateFormat))
	assert.Equal(t, 7, r.Days())
}

func TestTruncateDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2025, 5, 10, 22, 30, 0, 0, time.UTC)

	got := TruncateDate(ts, loc)

	assert.Equal(t, "2025-05-11", got.Format(DateFormat))
	assert.Zero(t, got.Hour())
	assert.True(t, SameDay(got, day("2025-05-11")))
}

func TestCalendarDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	parsed := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	got := CalendarDay(parsed, ny)
	assert.Equal(t, "2025-03-01", got.Format(DateFormat))
	assert.Equal(t, ny, got.Location())

	// TruncateDate переводит момент во времени, поэтому день сдвигается
	assert.Equal(t, "2025-02-28", TruncateDate(parsed, ny).Format(DateFormat))
}
