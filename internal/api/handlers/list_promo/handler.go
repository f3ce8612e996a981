package list_promo

import (
	"net/http"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo/models"
)

type Handler struct {
	service PromoService
	logger  Logger
}

func NewHandler(service PromoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	promos, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/promo - Failed to list promo codes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := models.FromDomainPromoList(promos)

	h.logger.Info("GET /admin/promo - Promo codes listed: total=%d", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
