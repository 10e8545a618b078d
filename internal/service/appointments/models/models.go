package models

import (
	"fmt"
	"time"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// AppointmentResponse модель записи для выдачи
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	FlagReason *string `json:"flagReason,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// ListRequest параметры выборки записей
type ListRequest struct {
	UserID *int64
	Date   *types.DateString
	Status *string
}

// FromDomainAppointment конвертирует доменную запись в модель выдачи
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         appt.ID,
		UserID:     appt.UserID,
		Date:       appt.Date.String(),
		Status:     string(appt.Status),
		FlagReason: appt.FlagReason,
		CreatedAt:  appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  appt.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = *FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{Appointments: result}
}

// ToDomainAppointmentStatus конвертирует строку в статус записи
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return status, nil
}
