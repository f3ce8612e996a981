package models

import (
	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// StatsResponse сводка дашборда
// Суммы передаются строками с двумя знаками после запятой
type StatsResponse struct {
	From string `json:"from"` // "2025-10-15"
	To   string `json:"to"`

	TotalBookings   int            `json:"totalBookings"`
	ByStatus        map[string]int `json:"byStatus"`
	ByTripType      map[string]int `json:"byTripType"`
	ByPaymentStatus map[string]int `json:"byPaymentStatus"`

	Revenue            string `json:"revenue"`
	PromoBookings      int    `json:"promoBookings"`
	PromoDiscountTotal string `json:"promoDiscountTotal"`

	OpenSlots   int `json:"openSlots"`
	ClosedSlots int `json:"closedSlots"`

	Trend []DayStatResponse `json:"trend"`
}

// DayStatResponse одна точка тренда
type DayStatResponse struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
	Revenue  string `json:"revenue"`
}

// FromDomainStats конвертирует domain сводку в DTO
func FromDomainStats(s *domain.DashboardStats) *StatsResponse {
	if s == nil {
		return nil
	}

	resp := &StatsResponse{
		From:               s.From.Format(domain.DateFormat),
		To:                 s.To.Format(domain.DateFormat),
		TotalBookings:      s.TotalBookings,
		ByStatus:           make(map[string]int, len(s.ByStatus)),
		ByTripType:         make(map[string]int, len(s.ByTripType)),
		ByPaymentStatus:    make(map[string]int, len(s.ByPaymentStatus)),
		Revenue:            s.Revenue.StringFixed(domain.MoneyPlaces),
		PromoBookings:      s.PromoBookings,
		PromoDiscountTotal: s.PromoDiscountTotal.StringFixed(domain.MoneyPlaces),
		OpenSlots:          s.OpenSlots,
		ClosedSlots:        s.ClosedSlots,
		Trend:              make([]DayStatResponse, 0, len(s.Trend)),
	}

	for status, n := range s.ByStatus {
		resp.ByStatus[string(status)] = n
	}
	for trip, n := range s.ByTripType {
		resp.ByTripType[string(trip)] = n
	}
	for payment, n := range s.ByPaymentStatus {
		resp.ByPaymentStatus[string(payment)] = n
	}
	for _, day := range s.Trend {
		resp.Trend = append(resp.Trend, DayStatResponse{
			Date:     day.Date.Format(domain.DateFormat),
			Bookings: day.Bookings,
			Revenue:  day.Revenue.StringFixed(domain.MoneyPlaces),
		})
	}

	return resp
}
