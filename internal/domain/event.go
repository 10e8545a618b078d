package domain

import "github.com/Cameron8325/teahouse-booking/pkg/types"

// EventCategory represents the kind of a derived calendar event
type EventCategory string

const (
	// CategoryDayType labels the offering type of an available day
	CategoryDayType EventCategory = "day_type"
	// CategoryCapacity shows the remaining booking capacity of a day
	CategoryCapacity EventCategory = "capacity"
)

// CalendarEvent is a derived display unit for one calendar date.
// Events are produced in pairs per available day: one day-type event
// and one capacity event sharing the same date
type CalendarEvent struct {
	Start    types.DateString
	End      types.DateString
	Title    string
	Category EventCategory

	// DayType is nil for capacity events
	DayType *DayType

	ColorKey string
}

// IsDayType returns true for the offering-label event of a day
func (e *CalendarEvent) IsDayType() bool {
	return e.Category == CategoryDayType
}

// IsCapacity returns true for the capacity-status event of a day
func (e *CalendarEvent) IsCapacity() bool {
	return e.Category == CategoryCapacity
}
