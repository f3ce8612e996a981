package create_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTerms       = "некорректные условия промокода"
	msgAlreadyExists      = "промокод уже существует"
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

// Handle POST /api/v1/admin/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /admin/promo - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrInvalidInput):
			h.logger.Warn("POST /admin/promo - Invalid terms: code=%s, error=%v", req.Code, err)
			handlers.RespondBadRequest(w, msgInvalidTerms)

		case errors.Is(err, promo.ErrPromoAlreadyExists):
			h.logger.Warn("POST /admin/promo - Promo already exists: code=%s", req.Code)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /admin/promo - Failed to create promo: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	operator, _ := middleware.GetAdminSubject(r.Context())
	h.logger.Info("POST /admin/promo - Promo created: code=%s, operator=%s", created.Code, operator)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainPromo(created))
}
