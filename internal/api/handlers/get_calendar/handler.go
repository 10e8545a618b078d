package get_calendar

import (
	"errors"
	"net/http"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
	composeCalendar "github.com/Cameron8325/teahouse-booking/internal/usecase/compose_calendar"
)

const (
	msgInvalidTypeFilter = "некорректный фильтр типа дня"
)

type Handler struct {
	useCase ComposeCalendarUseCase
	logger  Logger
}

func NewHandler(useCase ComposeCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: type (опционально, тип дня либо "all")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	typeFilter := r.URL.Query().Get("type")

	useCaseReq := ToUseCaseRequest(typeFilter)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, composeCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid type filter: type=%s", typeFilter)
			handlers.RespondBadRequest(w, msgInvalidTypeFilter)

		default:
			h.logger.Error("GET /calendar - Failed to compose calendar: type=%s, error=%v", typeFilter, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar - Calendar composed successfully: type=%s, events_count=%d",
		typeFilter, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, response)
}
