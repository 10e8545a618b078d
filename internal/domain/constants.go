package domain

// Default configuration values
const (
	// DefaultDayCapacity appointments bookable on a single day, any offering type
	DefaultDayCapacity = 4
)

// Business validation constants
const (
	MinDayCapacity      = 1
	MaxDayCapacity      = 20
	MaxFlagReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Capacity event display
const (
	// TitleFullyBooked capacity event title when no spots remain
	TitleFullyBooked = "Fully Booked"

	// ColorCapacityFull color key of the capacity event when the day is full
	ColorCapacityFull = "red"

	// ColorCapacityDefault color key of the capacity event when spots remain
	ColorCapacityDefault = "gray"
)

// FilterAll значение фильтра календаря, отключающее фильтрацию по типу дня
const FilterAll = "all"

// AllStatuses список всех статусов записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusDenied,
	StatusFlagged,
	StatusToCompletion,
}
