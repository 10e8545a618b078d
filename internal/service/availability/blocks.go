package availability

import "github.com/Cameron8325/teahouse-booking/internal/domain"

// groupBlocks группирует отсортированные по дате доступные дни в максимальные
// серии последовательных дней одного типа (блоки доступности)
//
// День продолжает текущий блок, только если он ровно на один календарный день
// позже предыдущего И совпадает с ним по типу - оба условия обязательны.
// Смена типа без разрыва дат все равно начинает новый блок
func groupBlocks(days []*domain.AvailableDay) []domain.AvailabilityBlock {
	blocks := make([]domain.AvailabilityBlock, 0)
	if len(days) == 0 {
		return blocks
	}

	current := domain.AvailabilityBlock{
		StartDate: days[0].Date,
		EndDate:   days[0].Date,
		Type:      days[0].Type,
		Days:      1,
	}

	for _, day := range days[1:] {
		if day.Date.IsNextDayOf(current.EndDate) && day.Type == current.Type {
			current.EndDate = day.Date
			current.Days++
			continue
		}

		blocks = append(blocks, current)
		current = domain.AvailabilityBlock{
			StartDate: day.Date,
			EndDate:   day.Date,
			Type:      day.Type,
			Days:      1,
		}
	}

	// Последний открытый блок эмитится безусловно
	blocks = append(blocks, current)

	return blocks
}
