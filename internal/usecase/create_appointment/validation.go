package create_appointment

import (
	"fmt"
	"time"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Запись без идентифицированного пользователя не создается
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateNotPast проверяет, что дата записи не в прошлом
func validateNotPast(date types.DateString, now time.Time) error {
	today := types.NewDateString(now)
	if date.IsBefore(today) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDate, date, today)
	}
	return nil
}
