package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/availability"
)

const (
	msgMissingDate  = "укажите date или from и to"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон дат"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (YYYY-MM-DD) либо from и to
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		record, err := h.service.GetDate(r.Context(), date)
		if err != nil {
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
			return
		}

		handlers.RespondJSON(w, http.StatusOK, FromDomain(record))
		return
	}

	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /availability - Missing date parameters")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	from, errFrom := time.Parse(domain.DateFormat, fromStr)
	to, errTo := time.Parse(domain.DateFormat, toStr)
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /availability - Invalid range: from=%s, to=%s", fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	records, err := h.service.GetRange(r.Context(), domain.DateRange{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability - Failed to get range %s..%s: %v", fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := RangeResponse{From: fromStr, To: toStr, Days: make([]AvailabilityResponse, 0, len(records))}
	for _, rec := range records {
		resp.Days = append(resp.Days, FromDomain(rec))
	}

	h.logger.Info("GET /availability - Range retrieved: %s..%s, days=%d", fromStr, toStr, len(resp.Days))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
