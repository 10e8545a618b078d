package set_day_capacity

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/service/settings/models"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

type SettingsService interface {
	SetDayCapacity(ctx context.Context, date types.DateString, capacity int) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
