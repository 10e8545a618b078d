package flag_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Cameron8325/teahouse-booking/internal/api/handlers"
	"github.com/Cameron8325/teahouse-booking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgEmptyReason          = "причина флага обязательна"
	msgReasonTooLong        = "причина флага слишком длинная"
	msgNotFound             = "запись не найдена"
	msgIllegalTransition    = "запись нельзя пометить флагом из текущего статуса"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/flag
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/flag - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req FlagAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/flag - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Flag(r.Context(), appointmentID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrEmptyReason):
			h.logger.Warn("PATCH /appointments/{id}/flag - Empty reason: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgEmptyReason)

		case errors.Is(err, appointments.ErrReasonTooLong):
			h.logger.Warn("PATCH /appointments/{id}/flag - Reason too long: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/flag - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrIllegalTransition):
			h.logger.Warn("PATCH /appointments/{id}/flag - Illegal transition: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /appointments/{id}/flag - Failed to flag appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/flag - Appointment flagged successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
