package remove_availability

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// AvailabilityRepository интерфейс репозитория доступных дней
type AvailabilityRepository interface {
	Delete(ctx context.Context, date types.DateString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
