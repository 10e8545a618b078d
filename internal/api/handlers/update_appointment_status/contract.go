package update_appointment_status

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	Approve(ctx context.Context, id int64) (*models.AppointmentResponse, error)
	Deny(ctx context.Context, id int64) (*models.AppointmentResponse, error)
	MarkToCompletion(ctx context.Context, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
