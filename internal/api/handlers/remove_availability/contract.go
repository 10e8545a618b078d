package remove_availability

import (
	"context"

	removeAvailability "github.com/Cameron8325/teahouse-booking/internal/usecase/remove_availability"
)

type RemoveAvailabilityUseCase interface {
	Execute(ctx context.Context, req *removeAvailability.Request) (*removeAvailability.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
