package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
	"github.com/Cameron8325/teahouse-booking/internal/service/appointments"
	"github.com/Cameron8325/teahouse-booking/internal/service/appointments/models"
)

const (
	actionApprove      = "approve"
	actionDeny         = "deny"
	actionToCompletion = "to-completion"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgUnknownAction        = "неизвестное действие"
	msgNotFound             = "запись не найдена"
	msgIllegalTransition    = "переход в этот статус недопустим из текущего"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/{action}
// Действия: approve, deny, to-completion
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]
	action := vars["action"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/{action} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var result *models.AppointmentResponse
	switch action {
	case actionApprove:
		result, err = h.service.Approve(r.Context(), appointmentID)
	case actionDeny:
		result, err = h.service.Deny(r.Context(), appointmentID)
	case actionToCompletion:
		result, err = h.service.MarkToCompletion(r.Context(), appointmentID)
	default:
		h.logger.Warn("PATCH /appointments/{id}/{action} - Unknown action: action=%s", action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/{action} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrIllegalTransition):
			h.logger.Warn("PATCH /appointments/{id}/{action} - Illegal transition: appointment_id=%d, action=%s",
				appointmentID, action)
			handlers.RespondError(w, http.StatusConflict, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /appointments/{id}/{action} - Failed to update status: appointment_id=%d, action=%s, error=%v",
				appointmentID, action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/{action} - Status updated successfully: appointment_id=%d, action=%s, status=%s",
		appointmentID, action, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
