package compose_calendar

import (
	"fmt"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
)

// spotsLeft вычисляет оставшуюся вместимость дня
// Результат зажимается в ноль: при переполнении (например, администратор
// добавил запись сверх потолка) день показывается как полностью занятый,
// а не уходит в отрицательные значения
func spotsLeft(capacity, appointmentCount int) int {
	left := capacity - appointmentCount
	if left < 0 {
		return 0
	}
	return left
}

// capacityTitle возвращает заголовок события вместимости
func capacityTitle(spots int) string {
	switch {
	case spots == 0:
		return domain.TitleFullyBooked
	case spots == 1:
		return "1 spot left"
	default:
		return fmt.Sprintf("%d spots left", spots)
	}
}
