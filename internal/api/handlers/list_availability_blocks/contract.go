package list_availability_blocks

import (
	"context"

	"github.com/Cameron8325/teahouse-booking/internal/service/availability/models"
)

type AvailabilityService interface {
	ListBlocks(ctx context.Context) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
