package settings

import (
	"context"

	settingsRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// SettingsRepository интерфейс репозитория переопределений вместимости
type SettingsRepository interface {
	GetByDate(ctx context.Context, date types.DateString) (*settingsRepo.CapacityOverride, error)
	ListAll(ctx context.Context) ([]*settingsRepo.CapacityOverride, error)
	Upsert(ctx context.Context, date types.DateString, capacity int) (*settingsRepo.CapacityOverride, error)
	Delete(ctx context.Context, date types.DateString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
