package list_available_days

import (
	"net/http"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListDays(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/days - Failed to list days: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/days - Days retrieved successfully: count=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
