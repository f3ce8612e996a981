package update_availability

import (
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	updateAvailability "github.com/m04kA/SMC-TaxiBooking/internal/usecase/update_availability"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	MorningOpen *bool `json:"morningOpen,omitempty"`
	EveningOpen *bool `json:"eveningOpen,omitempty"`
}

// SlotChangeResponse итог по одному слоту
type SlotChangeResponse struct {
	Slot               string  `json:"slot"`
	Open               bool    `json:"open"`
	Changed            bool    `json:"changed"`
	CancelledBookingID *string `json:"cancelledBookingId"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date        string               `json:"date"`
	MorningOpen bool                 `json:"morningOpen"`
	EveningOpen bool                 `json:"eveningOpen"`
	Changes     []SlotChangeResponse `json:"changes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAvailabilityRequest) ToUseCaseRequest(date time.Time) *updateAvailability.Request {
	return &updateAvailability.Request{
		Date:        date,
		MorningOpen: r.MorningOpen,
		EveningOpen: r.EveningOpen,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:        resp.Record.Date.Format(domain.DateFormat),
		MorningOpen: resp.Record.MorningOpen,
		EveningOpen: resp.Record.EveningOpen,
		Changes:     make([]SlotChangeResponse, 0, len(resp.Changes)),
	}

	for _, c := range resp.Changes {
		change := SlotChangeResponse{
			Slot:    string(c.Slot),
			Open:    c.Open,
			Changed: c.Changed,
		}
		if c.CancelledBookingID != nil {
			id := c.CancelledBookingID.String()
			change.CancelledBookingID = &id
		}
		out.Changes = append(out.Changes, change)
	}

	return out
}
