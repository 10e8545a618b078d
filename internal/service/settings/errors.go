package settings

import "errors"

var (
	// ErrInvalidCapacity возвращается при вместимости вне допустимого диапазона
	ErrInvalidCapacity = errors.New("capacity is out of allowed range")

	// ErrOverrideNotFound возвращается, когда переопределение не найдено
	ErrOverrideNotFound = errors.New("capacity override not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
