package compose_calendar

import "github.com/Cameron8325/teahouse-booking/internal/domain"

// Request модель запроса на композицию календаря
type Request struct {
	// TypeFilter тип дня для фильтрации либо "all" (без фильтрации)
	TypeFilter string
}

// Response модель ответа со списком событий календаря
type Response struct {
	Events []domain.CalendarEvent
}
