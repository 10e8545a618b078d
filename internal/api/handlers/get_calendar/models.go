package get_calendar

import (
	"github.com/Cameron8325/teahouse-booking/internal/domain"
	composeCalendar "github.com/Cameron8325/teahouse-booking/internal/usecase/compose_calendar"
)

// CalendarEvent HTTP модель события календаря
type CalendarEvent struct {
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	DayType  *string `json:"dayType,omitempty"`
	ColorKey string  `json:"colorKey"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Events []CalendarEvent `json:"events"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *composeCalendar.Response) *CalendarResponse {
	events := make([]CalendarEvent, len(resp.Events))
	for i, ev := range resp.Events {
		var dayType *string
		if ev.DayType != nil {
			s := string(*ev.DayType)
			dayType = &s
		}
		events[i] = CalendarEvent{
			Start:    ev.Start.String(),
			End:      ev.End.String(),
			Title:    ev.Title,
			Category: string(ev.Category),
			DayType:  dayType,
			ColorKey: ev.ColorKey,
		}
	}
	return &CalendarResponse{Events: events}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(typeFilter string) *composeCalendar.Request {
	if typeFilter == "" {
		typeFilter = domain.FilterAll
	}
	return &composeCalendar.Request{TypeFilter: typeFilter}
}
