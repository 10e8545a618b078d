package remove_day_capacity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
	"github.com/Cameron8325/teahouse-booking/internal/service/settings"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOverrideNotFound = "переопределение вместимости не найдено"
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

// Handle DELETE /api/v1/days/{date}/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		h.logger.Warn("DELETE /days/{date}/capacity - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveDayCapacity(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, settings.ErrOverrideNotFound):
			h.logger.Warn("DELETE /days/{date}/capacity - Override not found: date=%s", date)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		default:
			h.logger.Error("DELETE /days/{date}/capacity - Failed to remove override: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /days/{date}/capacity - Override removed successfully: date=%s", date)
	w.WriteHeader(http.StatusNoContent)
}
