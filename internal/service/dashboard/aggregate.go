package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// aggregate строит сводку по бронированиям, созданным в диапазоне, и доступности дат диапазона
// Даты без записи доступности считаются открытыми
func aggregate(bookings []*domain.Booking, records []*domain.AvailabilityRecord, r domain.DateRange, loc *time.Location) *domain.DashboardStats {
	stats := &domain.DashboardStats{
		From:               r.From,
		To:                 r.To,
		ByStatus:           make(map[domain.BookingStatus]int, len(domain.BookingStatuses)),
		ByTripType:         make(map[domain.TripType]int, len(domain.TripTypes)),
		ByPaymentStatus:    make(map[domain.PaymentStatus]int, len(domain.PaymentStatuses)),
		Revenue:            decimal.Zero,
		PromoDiscountTotal: decimal.Zero,
	}

	for _, s := range domain.BookingStatuses {
		stats.ByStatus[s] = 0
	}
	for _, t := range domain.TripTypes {
		stats.ByTripType[t] = 0
	}
	for _, p := range domain.PaymentStatuses {
		stats.ByPaymentStatus[p] = 0
	}

	dates := r.Dates()
	trend := make([]domain.DayStat, len(dates))
	index := make(map[string]int, len(dates))
	for i, d := range dates {
		trend[i] = domain.DayStat{Date: d, Revenue: decimal.Zero}
		index[d.Format(domain.DateFormat)] = i
	}

	for _, b := range bookings {
		stats.TotalBookings++
		stats.ByStatus[b.Status]++
		stats.ByTripType[b.TripType]++
		stats.ByPaymentStatus[b.PaymentStatus]++

		if b.HasPromo() {
			stats.PromoBookings++
			stats.PromoDiscountTotal = stats.PromoDiscountTotal.Add(b.PromoDiscountAmount)
		}

		i, inRange := index[b.CreatedAt.In(loc).Format(domain.DateFormat)]
		if inRange {
			trend[i].Bookings++
		}

		if b.CountsAsRevenue() {
			stats.Revenue = stats.Revenue.Add(b.Price)
			if inRange {
				trend[i].Revenue = trend[i].Revenue.Add(b.Price)
			}
		}
	}

	byDay := make(map[string]*domain.AvailabilityRecord, len(records))
	for _, rec := range records {
		byDay[rec.Date.Format(domain.DateFormat)] = rec
	}
	for _, d := range dates {
		open := len(domain.Slots)
		if rec, ok := byDay[d.Format(domain.DateFormat)]; ok {
			open = rec.OpenSlots()
		}
		stats.OpenSlots += open
		stats.ClosedSlots += len(domain.Slots) - open
	}

	stats.Revenue = domain.RoundMoney(stats.Revenue)
	stats.PromoDiscountTotal = domain.RoundMoney(stats.PromoDiscountTotal)
	stats.Trend = trend

	return stats
}
