package compose_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном фильтре типа дня
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
