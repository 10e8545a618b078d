package assign_availability

import (
	"fmt"
	"time"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Пустая конечная дата заменяется начальной (назначение на один день)
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startDate: %v", ErrInvalidInput, err)
	}

	if req.EndDate.IsZero() {
		req.EndDate = req.StartDate
	}

	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endDate: %v", ErrInvalidInput, err)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown day type %q", ErrInvalidInput, req.Type)
	}

	if req.EndDate.IsBefore(req.StartDate) {
		return fmt.Errorf("%w: endDate %s is before startDate %s", ErrInvalidRange, req.EndDate, req.StartDate)
	}

	return nil
}

// validateNotPast проверяет, что диапазон не начинается в прошлом
// Проверка выполняется ДО проверки конфликтов: назначение на прошедшую
// дату отклоняется независимо от состояния календаря
func validateNotPast(start types.DateString, now time.Time) error {
	today := types.NewDateString(now)
	if start.IsBefore(today) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDate, start, today)
	}
	return nil
}
