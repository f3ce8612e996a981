package get_analytics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/dashboard"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/dashboard/models"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays  = "параметр days должен быть целым числом"
	msgInvalidRange = "некорректный диапазон дат"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/analytics
// Query params: from и to (YYYY-MM-DD) либо days=N; без параметров период по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		stats *domain.DashboardStats
		err   error
	)

	if daysStr := query.Get("days"); daysStr != "" {
		days, convErr := strconv.Atoi(daysStr)
		if convErr != nil {
			h.logger.Warn("GET /admin/analytics - Invalid days: %s", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		stats, err = h.service.SummarizeLast(r.Context(), days)
	} else {
		rng, parseErr := parseRange(query.Get("from"), query.Get("to"))
		if parseErr != nil {
			h.logger.Warn("GET /admin/analytics - Invalid date: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		stats, err = h.service.Summarize(r.Context(), rng)
	}

	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrInvalidRange):
			h.logger.Warn("GET /admin/analytics - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/analytics - Failed to summarize: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := models.FromDomainStats(stats)

	h.logger.Info("GET /admin/analytics - Summary built: %s..%s, bookings=%d", resp.From, resp.To, resp.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// parseRange допускает пустые границы, их проверяет сервис
func parseRange(fromStr, toStr string) (domain.DateRange, error) {
	var rng domain.DateRange

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return rng, err
		}
		rng.From = from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return rng, err
		}
		rng.To = to
	}

	return rng, nil
}
