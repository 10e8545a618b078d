package assign_availability

import (
	"context"

	assignAvailability "github.com/Cameron8325/teahouse-booking/internal/usecase/assign_availability"
)

type AssignAvailabilityUseCase interface {
	Execute(ctx context.Context, req *assignAvailability.Request) (*assignAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
