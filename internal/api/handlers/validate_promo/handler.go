package validate_promo

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
	"github.com/m04kA/SMC-TaxiBooking/internal/service/promo/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownTripType    = "тариф для типа поездки не настроен"
	msgPromoNotFound      = "промокод не найден"
	msgPromoExpired       = "срок действия промокода истёк"
	msgPromoLimitReached  = "лимит использований промокода исчерпан"
)

type Handler struct {
	service PromoService
	tariffs map[domain.TripType]decimal.Decimal
	logger  Logger
}

func NewHandler(service PromoService, tariffs map[domain.TripType]decimal.Decimal, logger Logger) *Handler {
	return &Handler{
		service: service,
		tariffs: tariffs,
		logger:  logger,
	}
}

// Handle POST /api/v1/promo/validate
// Считает скидку по тарифу без списания использования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /promo/validate - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	base, ok := h.tariffs[domain.TripType(req.TripType)]
	if !ok {
		h.logger.Warn("POST /promo/validate - No tariff for trip type: %s", req.TripType)
		handlers.RespondBadRequest(w, msgUnknownTripType)
		return
	}

	application, err := h.service.Preview(r.Context(), req.Code, base, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrPromoNotFound):
			h.logger.Warn("POST /promo/validate - Promo not found: code=%s", req.Code)
			handlers.RespondUnprocessable(w, msgPromoNotFound)

		case errors.Is(err, promo.ErrPromoExpired):
			h.logger.Warn("POST /promo/validate - Promo expired: code=%s", req.Code)
			handlers.RespondUnprocessable(w, msgPromoExpired)

		case errors.Is(err, promo.ErrPromoLimitReached):
			h.logger.Warn("POST /promo/validate - Promo limit reached: code=%s", req.Code)
			handlers.RespondUnprocessable(w, msgPromoLimitReached)

		default:
			h.logger.Error("POST /promo/validate - Failed to preview promo: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promo/validate - Promo valid: code=%s, discount=%s",
		application.AppliedCode, application.DiscountAmount.StringFixed(domain.MoneyPlaces))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainApplication(application))
}
