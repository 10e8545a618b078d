package flag_appointment

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	Flag(ctx context.Context, id int64, reason string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
