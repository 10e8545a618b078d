package assign_availability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPastDate возвращается при попытке назначить доступность на прошедшую дату
	ErrPastDate = errors.New("availability date is in the past")

	// ErrInvalidRange возвращается, когда конец диапазона раньше начала
	ErrInvalidRange = errors.New("invalid date range")

	// ErrConflict возвращается при конфликте с существующей доступностью другого типа
	ErrConflict = errors.New("conflicting availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// ConflictError ошибка конфликта с перечнем конфликтующих дат
// Даты передаются вызывающей стороне целиком, чтобы администратор
// мог скорректировать выбранный диапазон
type ConflictError struct {
	Dates []types.DateString
}

// Error возвращает сообщение со списком конфликтующих дат
func (e *ConflictError) Error() string {
	formatted := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		formatted[i] = d.String()
	}
	return fmt.Sprintf("conflicting availability on: %s", strings.Join(formatted, ", "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrConflict)
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
