package assign_availability

import (
	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// findConflicts возвращает существующие дни, конфликтующие с предлагаемым назначением
// Конфликт - это день внутри закрытого интервала [start, end], тип которого
// отличается от предлагаемого. Совпадение типа конфликтом НЕ является:
// повторное назначение того же типа идемпотентно и безопасно
func findConflicts(
	start, end types.DateString,
	proposedType domain.DayType,
	existing []*domain.AvailableDay,
) []*domain.AvailableDay {
	conflicts := make([]*domain.AvailableDay, 0)

	for _, day := range existing {
		if day.Date.IsBefore(start) || day.Date.IsAfter(end) {
			continue
		}
		if day.Type == proposedType {
			continue
		}
		conflicts = append(conflicts, day)
	}

	return conflicts
}

// conflictDates извлекает даты конфликтующих дней
func conflictDates(conflicts []*domain.AvailableDay) []types.DateString {
	dates := make([]types.DateString, len(conflicts))
	for i, day := range conflicts {
		dates[i] = day.Date
	}
	return dates
}
