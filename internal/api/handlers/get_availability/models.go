package get_availability

import (
	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date        string `json:"date"` // "2025-03-01"
	MorningOpen bool   `json:"morningOpen"`
	EveningOpen bool   `json:"eveningOpen"`
}

// RangeResponse HTTP response model для диапазона дат
type RangeResponse struct {
	From string                 `json:"from"`
	To   string                 `json:"to"`
	Days []AvailabilityResponse `json:"days"`
}

// FromDomain конвертирует запись доступности в HTTP response
func FromDomain(rec *domain.AvailabilityRecord) AvailabilityResponse {
	return AvailabilityResponse{
		Date:        rec.Date.Format(domain.DateFormat),
		MorningOpen: rec.MorningOpen,
		EveningOpen: rec.EveningOpen,
	}
}
