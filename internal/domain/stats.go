package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats read-only rollup over bookings and availability for a date range
type DashboardStats struct {
	From time.Time
	To   time.Time

	TotalBookings   int
	ByStatus        map[BookingStatus]int
	ByTripType      map[TripType]int
	ByPaymentStatus map[PaymentStatus]int

	Revenue            decimal.Decimal
	PromoBookings      int
	PromoDiscountTotal decimal.Decimal

	// Slot occupancy over the pickup dates of the range
	OpenSlots   int
	ClosedSlots int

	Trend []DayStat
}

// DayStat one bucket of the trend series
type DayStat struct {
	Date     time.Time
	Bookings int
	Revenue  decimal.Decimal
}
