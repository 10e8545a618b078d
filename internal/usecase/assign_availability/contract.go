package assign_availability

import (
	"context"
	"time"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// AvailabilityRepository интерфейс репозитория доступных дней
type AvailabilityRepository interface {
	// ListRange получает доступные дни закрытого интервала [start, end]
	// Внутри транзакции блокирует строки диапазона
	ListRange(ctx context.Context, start, end types.DateString) ([]*domain.AvailableDay, error)
	// Upsert создает день или обновляет его тип (не более одной записи на дату)
	Upsert(ctx context.Context, date types.DateString, dayType domain.DayType) (*domain.AvailableDay, error)
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
