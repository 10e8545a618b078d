package list_capacity_overrides

import (
	"net/http"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/capacity-overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListOverrides(r.Context())
	if err != nil {
		h.logger.Error("GET /days/capacity-overrides - Failed to list overrides: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /days/capacity-overrides - Overrides retrieved successfully: count=%d", len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
