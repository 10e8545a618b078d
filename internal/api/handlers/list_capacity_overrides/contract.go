package list_capacity_overrides

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/service/settings/models"
)

type SettingsService interface {
	ListOverrides(ctx context.Context) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
