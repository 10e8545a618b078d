package assign_availability

import (
	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// Request модель запроса на назначение доступности
type Request struct {
	StartDate types.DateString // Начало диапазона (обязательно)
	EndDate   types.DateString // Конец диапазона (опционально, по умолчанию равен началу)
	Type      domain.DayType   // Тип предложения для всех дат диапазона
}

// Response модель ответа с перечнем записанных дат
type Response struct {
	Type  domain.DayType
	Dates []types.DateString
}
