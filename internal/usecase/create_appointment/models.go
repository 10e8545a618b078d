package create_appointment

import (
	"time"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID int64            // Пользователь, на которого создается запись
	Date   types.DateString // Дата посещения
}

// Response модель созданной записи
type Response struct {
	ID        int64
	UserID    int64
	Date      types.DateString
	Status    string
	DayType   domain.DayType
	CreatedAt time.Time
	UpdatedAt time.Time
}
