package remove_availability

import "github.com/Cameron8325/teahouse-booking/pkg/types"

// Request модель запроса на удаление дат из доступности
type Request struct {
	Dates []types.DateString
}

// FailedDate дата, которую не удалось удалить, с причиной
type FailedDate struct {
	Date   types.DateString
	Reason string
}

// Report отчет об удалении: какие даты удалены, какие нет
// Частичный успех - нормальный исход, а не ошибка
type Report struct {
	Removed []types.DateString
	Failed  []FailedDate
}

// AllSucceeded возвращает true, если все даты удалены
func (r *Report) AllSucceeded() bool {
	return len(r.Failed) == 0
}
