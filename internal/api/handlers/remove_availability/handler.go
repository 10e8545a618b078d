package remove_availability

import (
	"errors"
	"net/http"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
	removeAvailability "github.com/Cameron8325/teahouse-booking/internal/usecase/remove_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmptyDates         = "список дат пуст"
)

type Handler struct {
	useCase RemoveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase RemoveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availability
// Возвращает 200 и отчет даже при частичном успехе: клиент сам
// решает, что делать с неудаленными датами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RemoveAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("DELETE /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	report, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, removeAvailability.ErrInvalidInput):
			h.logger.Warn("DELETE /availability - Empty dates list")
			handlers.RespondBadRequest(w, msgEmptyDates)

		default:
			h.logger.Error("DELETE /availability - Failed to remove availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseReport(report)

	h.logger.Info("DELETE /availability - Removal finished: removed=%d, failed=%d",
		len(report.Removed), len(report.Failed))
	handlers.RespondJSON(w, http.StatusOK, response)
}
