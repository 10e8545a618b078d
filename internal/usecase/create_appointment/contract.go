package create_appointment

import (
	"context"
	"time"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
	"github.com/Cameron8325/teahouse-booking/internal/integrations/identityservice"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// CountByDate считает ВСЕ записи на дату независимо от статуса
	CountByDate(ctx context.Context, date types.DateString) (int, error)
}

// AvailabilityRepository интерфейс репозитория доступных дней
type AvailabilityRepository interface {
	GetByDate(ctx context.Context, date types.DateString) (*domain.AvailableDay, error)
}

// SettingsRepository интерфейс репозитория переопределений вместимости
type SettingsRepository interface {
	GetByDate(ctx context.Context, date types.DateString) (*settings.CapacityOverride, error)
}

// IdentityServiceClient интерфейс клиента IdentityService
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
