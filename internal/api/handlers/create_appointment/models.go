package create_appointment

import (
	"time"

	createAppointment "github.com/Cameron8325/teahouse-booking/internal/usecase/create_appointment"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date string `json:"date"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	DayType   string `json:"dayType"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}
	return &createAppointment.Request{
		UserID: userID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		Date:      resp.Date.String(),
		Status:    resp.Status,
		DayType:   string(resp.DayType),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
