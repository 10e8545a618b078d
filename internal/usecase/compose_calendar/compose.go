package compose_calendar

import (
	"sort"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// composeEvents собирает события календаря из снимков доступности и записей
// Для каждого доступного дня эмитятся РОВНО два события с одной датой:
// событие типа дня и событие оставшейся вместимости
//
// Порядок детерминирован: даты по возрастанию, для одной даты событие
// типа дня раньше события вместимости - отображение календаря зависит от этого
func composeEvents(
	days []*domain.AvailableDay,
	appointments []*domain.Appointment,
	overrides map[types.DateString]int,
	defaultCapacity int,
) []domain.CalendarEvent {
	// Считаем записи на каждую дату; статус не важен - слот занимает
	// сам факт существования записи
	countByDate := make(map[types.DateString]int)
	for _, appt := range appointments {
		countByDate[appt.Date]++
	}

	events := make([]domain.CalendarEvent, 0, len(days)*2)

	for _, day := range days {
		dayType := day.Type

		events = append(events, domain.CalendarEvent{
			Start:    day.Date,
			End:      day.Date,
			Title:    dayType.Label(),
			Category: domain.CategoryDayType,
			DayType:  &dayType,
			ColorKey: dayType.ColorKey(),
		})

		capacity := defaultCapacity
		if override, ok := overrides[day.Date]; ok {
			capacity = override
		}

		spots := spotsLeft(capacity, countByDate[day.Date])
		color := domain.ColorCapacityDefault
		if spots == 0 {
			color = domain.ColorCapacityFull
		}

		events = append(events, domain.CalendarEvent{
			Start:    day.Date,
			End:      day.Date,
			Title:    capacityTitle(spots),
			Category: domain.CategoryCapacity,
			DayType:  nil,
			ColorKey: color,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Start != events[j].Start {
			return events[i].Start.IsBefore(events[j].Start)
		}
		// Для одной даты событие типа дня идет раньше события вместимости
		return events[i].IsDayType() && events[j].IsCapacity()
	})

	return events
}

// filterByType фильтрует события по типу дня
// Значение "all" отключает фильтрацию. Иначе остаются события типа дня
// выбранного типа ПЛЮС события вместимости на те же даты: пара одной даты
// проходит фильтр только целиком
func filterByType(events []domain.CalendarEvent, selectedType string) []domain.CalendarEvent {
	if selectedType == domain.FilterAll {
		return events
	}

	selected := domain.DayType(selectedType)

	matchedDates := make(map[types.DateString]bool)
	for _, event := range events {
		if event.IsDayType() && event.DayType != nil && *event.DayType == selected {
			matchedDates[event.Start] = true
		}
	}

	filtered := make([]domain.CalendarEvent, 0)
	for _, event := range events {
		if !matchedDates[event.Start] {
			continue
		}
		if event.IsDayType() && (event.DayType == nil || *event.DayType != selected) {
			continue
		}
		filtered = append(filtered, event)
	}

	return filtered
}
