package update_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TaxiBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	updateAvailability "github.com/m04kA/SMC-TaxiBooking/internal/usecase/update_availability"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNothingToUpdate    = "укажите morningOpen или eveningOpen"
)

type Handler struct {
	useCase UpdateAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("PATCH /admin/availability/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/availability/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(date))
	if err != nil {
		switch {
		case errors.Is(err, updateAvailability.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/availability/{date} - Nothing to update: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgNothingToUpdate)

		default:
			h.logger.Error("PATCH /admin/availability/{date} - Failed to update: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	operator, _ := middleware.GetAdminSubject(r.Context())
	h.logger.Info("PATCH /admin/availability/{date} - Availability updated: date=%s, morning=%t, evening=%t, operator=%s",
		dateStr, result.Record.MorningOpen, result.Record.EveningOpen, operator)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
