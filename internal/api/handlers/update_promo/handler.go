package update_promo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTerms       = "некорректные условия промокода"
	msgNotFound           = "промокод не найден"
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

// Handle PUT /api/v1/admin/promo/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req UpdatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/promo/{code} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PUT /admin/promo/{code} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), code, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrPromoNotFound):
			h.logger.Warn("PUT /admin/promo/{code} - Promo not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, promo.ErrInvalidInput):
			h.logger.Warn("PUT /admin/promo/{code} - Invalid terms: code=%s, error=%v", code, err)
			handlers.RespondBadRequest(w, msgInvalidTerms)

		default:
			h.logger.Error("PUT /admin/promo/{code} - Failed to update promo: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	operator, _ := middleware.GetAdminSubject(r.Context())
	h.logger.Info("PUT /admin/promo/{code} - Promo updated: code=%s, operator=%s", updated.Code, operator)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainPromo(updated))
}
