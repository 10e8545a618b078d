package availability

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступных дней
type AvailabilityRepository interface {
	List(ctx context.Context) ([]*domain.AvailableDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
