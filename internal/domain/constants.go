package domain

// Default values
const (
	DefaultMaxBookings   = 1
	DefaultDashboardDays = 7
)

// Business validation constants
const (
	MinPassengers            = 1
	MaxPassengers            = 8
	MaxNotesLength           = 500
	MaxPromoCodeLength       = 32
	MaxAvailabilityRangeDays = 62
	MaxAnalyticsRangeDays    = 366
)

// Booking number format
const (
	BookingNumberPrefix       = "TB"
	BookingNumberSuffixLength = 4
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingStatuses all known booking statuses
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// PaymentStatuses all known payment statuses
var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentFailed,
	PaymentRefunded,
}

// HoldingStatuses статусы, при которых бронирование удерживает слот
var HoldingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
