package assign_availability

import (
	"errors"
	"net/http"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
	assignAvailability "github.com/Cameron8325/teahouse-booking/internal/usecase/assign_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidType        = "некорректный тип дня"
	msgInvalidRange       = "конец диапазона раньше начала"
	msgPastDate           = "дата уже прошла"
	msgConflict           = "диапазон конфликтует с существующей доступностью другого типа"
)

type Handler struct {
	useCase AssignAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AssignAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AssignAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *assignAvailability.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /availability - Conflict: start=%s, end=%s, conflict_dates=%d",
				req.StartDate, useCaseReq.EndDate, len(conflictErr.Dates))
			dates := make([]string, len(conflictErr.Dates))
			for i, d := range conflictErr.Dates {
				dates[i] = d.String()
			}
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:         msgConflict,
				ConflictDates: dates,
			})

		case errors.Is(err, assignAvailability.ErrPastDate):
			h.logger.Warn("PUT /availability - Past date: start=%s", req.StartDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, assignAvailability.ErrInvalidRange):
			h.logger.Warn("PUT /availability - Invalid range: start=%s, end=%s", req.StartDate, useCaseReq.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, assignAvailability.ErrInvalidInput):
			h.logger.Warn("PUT /availability - Invalid input: type=%s", req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)

		default:
			h.logger.Error("PUT /availability - Failed to assign availability: start=%s, error=%v", req.StartDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /availability - Availability assigned successfully: type=%s, dates_count=%d",
		result.Type, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
