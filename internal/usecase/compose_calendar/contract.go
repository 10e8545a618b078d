package compose_calendar

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/appointment"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
)

// AvailabilityRepository интерфейс репозитория доступных дней
type AvailabilityRepository interface {
	List(ctx context.Context) ([]*domain.AvailableDay, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter appointment.Filter) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория переопределений вместимости
type SettingsRepository interface {
	ListAll(ctx context.Context) ([]*settings.CapacityOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
