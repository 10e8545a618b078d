package list_availability_blocks

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

// Handle GET /api/v1/availability/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlocks(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/blocks - Failed to list blocks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/blocks - Blocks retrieved successfully: count=%d", len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
