package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TaxiBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты подачи, ожидается YYYY-MM-DD"
	msgSlotNotAvailable   = "выбранный слот уже занят"
	msgInvalidBookingDate = "дата подачи в прошлом"
	msgDateTooFar         = "дата подачи слишком далеко в будущем"
	msgPromoNotFound      = "промокод не найден"
	msgPromoExpired       = "срок действия промокода истёк"
	msgPromoLimitReached  = "лимит использований промокода исчерпан"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse pickup date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, slot=%s", req.PickupDate, req.PickupTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrPromoNotFound):
			h.logger.Warn("POST /bookings - Promo not found: date=%s, slot=%s", req.PickupDate, req.PickupTime)
			handlers.RespondUnprocessable(w, msgPromoNotFound)

		case errors.Is(err, createBooking.ErrPromoExpired):
			h.logger.Warn("POST /bookings - Promo expired: date=%s, slot=%s", req.PickupDate, req.PickupTime)
			handlers.RespondUnprocessable(w, msgPromoExpired)

		case errors.Is(err, createBooking.ErrPromoLimitReached):
			h.logger.Warn("POST /bookings - Promo limit reached: date=%s, slot=%s", req.PickupDate, req.PickupTime)
			handlers.RespondUnprocessable(w, msgPromoLimitReached)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Pickup date in the past: date=%s", req.PickupDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: date=%s", req.PickupDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%s, error=%v",
				req.PickupDate, req.PickupTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, number=%s",
		response.ID, response.BookingNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
