package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/dashboard/models"
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

// Handle GET /api/v1/admin/dashboard
// Сводка за период по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Summarize(r.Context(), domain.DateRange{})
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to summarize: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Summary built: bookings=%d", stats.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainStats(stats))
}
