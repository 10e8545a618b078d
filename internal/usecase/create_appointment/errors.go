package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUserNotFound возвращается, когда пользователь не найден в IdentityService
	ErrUserNotFound = errors.New("user not found")

	// ErrIdentityUnavailable возвращается при недоступности IdentityService
	// Без подтвержденной личности запись не создается
	ErrIdentityUnavailable = errors.New("identity service unavailable")

	// ErrPastDate возвращается при попытке записаться на прошедшую дату
	ErrPastDate = errors.New("appointment date is in the past")

	// ErrDayNotBookable возвращается, когда на дату нет доступности
	ErrDayNotBookable = errors.New("day is not open for booking")

	// ErrDayFullyBooked возвращается, когда вместимость дня исчерпана
	ErrDayFullyBooked = errors.New("day is fully booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
