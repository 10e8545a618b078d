package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrEmptyReason возвращается при попытке пометить запись без причины
	ErrEmptyReason = errors.New("flag reason must not be empty")

	// ErrReasonTooLong возвращается, когда причина флага превышает лимит
	ErrReasonTooLong = errors.New("flag reason is too long")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
