package set_day_capacity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
	"github.com/Cameron8325/teahouse-booking/internal/service/settings"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCapacity    = "вместимость вне допустимого диапазона"
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

// Handle PUT /api/v1/days/{date}/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		h.logger.Warn("PUT /days/{date}/capacity - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetDayCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /days/{date}/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetDayCapacity(r.Context(), date, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidCapacity):
			h.logger.Warn("PUT /days/{date}/capacity - Invalid capacity: date=%s, capacity=%d", date, req.Capacity)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /days/{date}/capacity - Invalid input: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PUT /days/{date}/capacity - Failed to set capacity: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /days/{date}/capacity - Capacity set successfully: date=%s, capacity=%d", date, req.Capacity)
	handlers.RespondJSON(w, http.StatusOK, result)
}
