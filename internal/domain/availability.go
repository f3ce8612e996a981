package domain

import "time"

// AvailabilityRecord is the per-date state of both daily slots
// The flags are the authoritative lock: a closed slot cannot back a new booking
type AvailabilityRecord struct {
	Date        time.Time
	MorningOpen bool
	EveningOpen bool

	// Legacy capacity counters, one active booking per slot is enforced regardless
	MaxBookings     int
	CurrentBookings int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultAvailability returns the implicit record of a date that has never been touched
func DefaultAvailability(date time.Time) *AvailabilityRecord {
	return &AvailabilityRecord{
		Date:        date,
		MorningOpen: true,
		EveningOpen: true,
		MaxBookings: DefaultMaxBookings,
	}
}

// IsOpen returns the flag of the given slot
func (a *AvailabilityRecord) IsOpen(slot Slot) bool {
	switch slot {
	case SlotMorning:
		return a.MorningOpen
	case SlotEvening:
		return a.EveningOpen
	default:
		return false
	}
}

// OpenSlots returns the number of open slots of the day
func (a *AvailabilityRecord) OpenSlots() int {
	n := 0
	for _, s := range Slots {
		if a.IsOpen(s) {
			n++
		}
	}
	return n
}

// TruncateDate converts t to the calendar day in loc (local midnight)
func TruncateDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// CalendarDay keeps the calendar date of t and places it at midnight in loc
// Use it for dates parsed without a location, TruncateDate would shift them west of UTC
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay compares calendar days ignoring time and location
func SameDay(a, b time.Time) bool {
	return a.Format(DateFormat) == b.Format(DateFormat)
}

// DateRange is an inclusive range of calendar days
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero returns true if the range was not specified
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Days returns the number of days in the range
func (r DateRange) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return int(dayNumber(r.To)-dayNumber(r.From)) + 1
}

// Dates returns every day of the range in order
func (r DateRange) Dates() []time.Time {
	n := r.Days()
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, r.From.AddDate(0, 0, i))
	}
	return dates
}

// LastDays returns the range of n days ending with today
func LastDays(today time.Time, n int) DateRange {
	return DateRange{From: today.AddDate(0, 0, -(n - 1)), To: today}
}

func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
