package types

import (
	"errors"
	"time"
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректной строке даты
var ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")

// DateString дата с точностью до дня без компонента времени
// Хранится как строка "YYYY-MM-DD", сравнивается лексикографически
type DateString string

// NewDateString создает DateString из time.Time, отбрасывая время
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", ErrInvalidDateFormat
	}
	return DateString(s), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет корректность формата даты
func (d DateString) Validate() error {
	_, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return ErrInvalidDateFormat
	}
	return nil
}

// Time возвращает дату как time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// IsBefore проверяет, что дата строго раньше other
// Формат YYYY-MM-DD допускает лексикографическое сравнение
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter проверяет, что дата строго позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// Equal проверяет равенство дат
func (d DateString) Equal(other DateString) bool {
	return d == other
}

// AddDays возвращает дату через заданное количество дней
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// IsNextDayOf проверяет, что дата ровно на один календарный день позже other
func (d DateString) IsNextDayOf(other DateString) bool {
	next, err := other.AddDays(1)
	if err != nil {
		return false
	}
	return d == next
}

// DaysUntil возвращает количество дней от d до other (отрицательное, если other раньше)
func (d DateString) DaysUntil(other DateString) (int, error) {
	from, err := d.Time()
	if err != nil {
		return 0, err
	}
	to, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}

// DatesInRange возвращает все даты закрытого интервала [start, end] по возрастанию
func DatesInRange(start, end DateString) ([]DateString, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}
	if end.IsBefore(start) {
		return []DateString{}, nil
	}

	dates := make([]DateString, 0)
	current := start
	for !current.IsAfter(end) {
		dates = append(dates, current)
		next, err := current.AddDays(1)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return dates, nil
}
