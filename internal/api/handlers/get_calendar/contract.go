package get_calendar

import (
	"context"

	composeCalendar "github.com/Cameron8325/teahouse-booking/internal/usecase/compose_calendar"
)

type ComposeCalendarUseCase interface {
	Execute(ctx context.Context, req *composeCalendar.Request) (*composeCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
