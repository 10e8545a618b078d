package remove_day_capacity

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

type SettingsService interface {
	RemoveDayCapacity(ctx context.Context, date types.DateString) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
