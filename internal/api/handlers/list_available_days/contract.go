package list_available_days

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/service/availability/models"
)

type AvailabilityService interface {
	ListDays(ctx context.Context) (*models.DayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
